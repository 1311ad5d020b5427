package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the repositories
// own, including the unique index backing the generation ledger.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&organizationModel{},
		&userModel{},
		&memberModel{},
		&planModel{},
		&paymentModel{},
		&classTemplateModel{},
		&classInstanceModel{},
		&generationLogModel{},
	)
}
