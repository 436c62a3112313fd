package migrations

import (
	"pulsegym/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

func MigrateRosterTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MemberModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.InvoiceModel{},
		&models.TransactionModel{},
		&models.ClassBookingModel{},
	)
}

func MigrateAssessmentTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.AssessmentSnapshotModel{})
}
