package models

import (
	"time"

	"gorm.io/gorm"
)

// InvoiceModel represents the database persistence model for billing invoices.
type InvoiceModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"uniqueIndex;not null;size:32"`
	MemberSID       string `gorm:"index;not null;size:32"`
	SubscriptionSID string `gorm:"index;size:32"`
	AmountCents     int64  `gorm:"not null"`
	Status          string `gorm:"not null;size:20;default:open"`
	IssuedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}
