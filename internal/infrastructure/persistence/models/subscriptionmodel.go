package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionModel represents the database persistence model for member
// subscriptions.
type SubscriptionModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"uniqueIndex;not null;size:32"`
	MemberSID         string `gorm:"index;not null;size:32"`
	PlanSID           string `gorm:"index;not null;size:32"`
	BillingCycle      string `gorm:"not null;size:20;default:monthly"`
	AmountCents       int64  `gorm:"not null"`
	Status            string `gorm:"not null;size:20;default:active"`
	CancelAtPeriodEnd bool   `gorm:"default:false"`
	StartedAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = "active"
	}
	if s.BillingCycle == "" {
		s.BillingCycle = "monthly"
	}
	return nil
}
