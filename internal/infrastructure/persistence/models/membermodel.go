package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemberModel represents the database persistence model for gym members.
// This is the anti-corruption layer between domain and database.
type MemberModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"uniqueIndex;not null;size:32"`
	Name            string `gorm:"not null;size:200"`
	Email           string `gorm:"index;size:255"`
	Phone           string `gorm:"size:32"`
	PlanSID         string `gorm:"index;size:32"`
	SubscriptionSID string `gorm:"index;size:32"`
	Status          string `gorm:"not null;size:20;default:active"`
	CheckInHistory  datatypes.JSON
	MemberSince     time.Time `gorm:"not null"`
	CancelledAt     *time.Time
	PausedUntil     *time.Time
	Tags            datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// BeforeCreate hook for GORM
func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	return nil
}
