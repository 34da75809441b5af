package services

import (
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/sunridge/campreg/internal/models"
)

// Tokenize splits a raw search query on Unicode whitespace and commas and
// drops empty tokens. Pure; the separator set is fixed.
func Tokenize(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// SearchResult partitions the dashboard rows: pending awaits review,
// processed is everything else (approved and rejected). Emails is the
// deduplicated, order-stable list of distinct non-empty registrant emails
// across both partitions, for bulk contact.
type SearchResult struct {
	Pending   []models.Registration
	Processed []models.Registration
	Emails    []string
}

// SearchRegistrations loads the full join of registration, ownership chain,
// and session, newest first, then applies the token filter: a row matches if
// ANY token is a case-insensitive substring of ANY searched field. Tokens are
// OR'd, never AND'd. An empty query returns everything.
func SearchRegistrations(gdb *gorm.DB, query string) (SearchResult, error) {
	var regs []models.Registration
	err := gdb.
		Preload("ChildProfile").
		Preload("ChildProfile.Parent").
		Preload("Address").
		Preload("ClassInfo").
		Preload("Session").
		Order("created_at DESC, id DESC").
		Find(&regs).Error
	if err != nil {
		return SearchResult{}, err
	}

	tokens := Tokenize(query)

	var out SearchResult
	seen := map[string]bool{}
	for i := range regs {
		reg := regs[i]
		if len(tokens) > 0 && !matchesAnyToken(&reg, tokens) {
			continue
		}
		if reg.Status == models.StatusPending {
			out.Pending = append(out.Pending, reg)
		} else {
			out.Processed = append(out.Processed, reg)
		}
		if e := strings.TrimSpace(reg.Email); e != "" && !seen[e] {
			seen[e] = true
			out.Emails = append(out.Emails, e)
		}
	}
	return out, nil
}

func matchesAnyToken(reg *models.Registration, tokens []string) bool {
	fields := searchFields(reg)
	for _, tok := range tokens {
		needle := strings.ToLower(tok)
		for _, f := range fields {
			if f != "" && strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
	}
	return false
}

func searchFields(reg *models.Registration) []string {
	fields := []string{
		reg.Code,
		reg.FirstName,
		reg.LastName,
		reg.ChildProfile.Parent.FirstName,
		reg.ChildProfile.Parent.LastName,
		reg.Email,
		reg.Phone,
		reg.Address.Street,
		reg.Address.City,
		reg.AdminNotes,
		reg.BirthDate.Format("2006-01-02"),
		reg.CreatedAt.Format("2006-01-02"),
	}
	if reg.Session != nil {
		fields = append(fields,
			reg.Session.Name,
			reg.Session.Season,
			reg.Session.StartDate.Format("2006-01-02"),
			reg.Session.EndDate.Format("2006-01-02"),
		)
	}
	return fields
}
