package main

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/sunridge/campreg/internal/auth"
	"github.com/sunridge/campreg/internal/db"
	"github.com/sunridge/campreg/internal/handlers"
	"github.com/sunridge/campreg/internal/notify"
	"github.com/sunridge/campreg/internal/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	gdb, err := db.Open(getEnv("DB_PATH", "campreg.db"))
	if err != nil {
		log.Fatalw("db open", "err", err)
	}

	if err := auth.SeedAdmin(gdb,
		getEnv("ADMIN_USERNAME", "admin"),
		getEnv("ADMIN_PASSWORD", "admin123"), // change in production
	); err != nil {
		log.Fatalw("admin seed", "err", err)
	}

	notifier := notify.FromConfig(notify.SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: getEnv("SMTP_PORT", "587"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: getEnv("SMTP_FROM", "noreply@sunridgedaycamp.org"),
	}, log)

	app := &handlers.App{
		DB:         gdb,
		Notifier:   notifier,
		Log:        log,
		Tmpl:       web.Templates("templates"),
		Sessions:   handlers.NewSessionStore(),
		AdminEmail: getEnv("CAMP_ADMIN_EMAIL", "office@sunridgedaycamp.org"),
	}

	addr := getEnv("ADDR", ":8080")
	log.Infow("sunridge camp registration listening", "addr", addr)
	if err := http.ListenAndServe(addr, web.Router(app)); err != nil {
		log.Fatalw("server", "err", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
