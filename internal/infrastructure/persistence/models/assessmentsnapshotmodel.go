package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentSnapshotModel persists the latest risk computation per member so
// the list endpoint can page over snapshots without recomputing the whole
// roster. One row per member; each roster run overwrites it.
type AssessmentSnapshotModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:32"`
	MemberSID     string `gorm:"uniqueIndex;not null;size:32"`
	Score         int    `gorm:"not null"`
	Level         string `gorm:"index;not null;size:20"`
	Factors       datatypes.JSON
	Explanation   datatypes.JSON
	Interventions datatypes.JSON
	ComputedAt    time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AssessmentSnapshotModel) TableName() string {
	return "assessment_snapshots"
}
