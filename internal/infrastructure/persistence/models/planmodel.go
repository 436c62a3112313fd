package models

import (
	"time"

	"gorm.io/gorm"
)

// PlanModel represents the database persistence model for membership plans.
type PlanModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"uniqueIndex;not null;size:32"`
	Name              string `gorm:"not null;size:100"`
	MonthlyPriceCents int64  `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
