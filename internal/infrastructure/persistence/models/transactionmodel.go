package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionModel represents the database persistence model for payment
// transactions.
type TransactionModel struct {
	ID          uint      `gorm:"primarykey"`
	SID         string    `gorm:"uniqueIndex;not null;size:32"`
	MemberSID   string    `gorm:"index;not null;size:32"`
	AmountCents int64     `gorm:"not null"`
	Type        string    `gorm:"not null;size:20"`
	Status      string    `gorm:"not null;size:20"`
	OccurredAt  time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}
