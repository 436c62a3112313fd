package models

import (
	"time"

	"gorm.io/gorm"
)

// ClassBookingModel represents the database persistence model for class
// bookings.
type ClassBookingModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"uniqueIndex;not null;size:32"`
	MemberSID string    `gorm:"index;not null;size:32"`
	ClassSID  string    `gorm:"index;size:32"`
	Status    string    `gorm:"not null;size:20;default:confirmed"`
	StartsAt  time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ClassBookingModel) TableName() string {
	return "class_bookings"
}

// BeforeCreate hook for GORM
func (b *ClassBookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = "confirmed"
	}
	return nil
}
