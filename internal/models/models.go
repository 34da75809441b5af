package models

import "time"

// Session is a scheduled camp offering. Capacity nil means unlimited seats;
// the seat count is informational and never enforced at registration time.
type Session struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   string // "15:04"
	EndTime     string
	Capacity    *int
	Season      string
}

// Parent is created fresh for every registration; there is no dedup or
// merge across registrations (contact info is a snapshot at signup time).
type Parent struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Waiver    string // "Y" | "N"
}

type Address struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Street string
	City   string
	State  string
	Zip    string

	ParentID uint
	Parent   Parent
}

// ClassInfo holds the free-text special requests captured with a registration.
type ClassInfo struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	SpecialRequests string
}

type ChildProfile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FirstName string
	LastName  string
	Age       *int

	ParentID    uint
	Parent      Parent
	ClassInfoID uint
	ClassInfo   ClassInfo
}

// Registration statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Registration owns a private Parent/Address/ClassInfo/ChildProfile chain;
// those rows are never shared across registrations.
type Registration struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate time.Time

	Status     string // pending | approved | rejected
	AdminNotes string
	Code       string `gorm:"uniqueIndex"` // e.g., REG-1A2B3C4D

	ChildProfileID uint
	ChildProfile   ChildProfile
	AddressID      uint
	Address        Address
	ClassInfoID    uint
	ClassInfo      ClassInfo
	SessionID      *uint
	Session        *Session
}

type AdminUser struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Username string `gorm:"uniqueIndex;not null"`
	Password string // bcrypt hash, or legacy plaintext pending migration
	Role     string // "admin"
}
