// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"haven/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// IMPORTANT: dedupe wizard rows BEFORE AutoMigrate so the unique
	// (user_id, kind) index can be created on databases written by older builds.
	if err := migrateWizardDedupe(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Community{},
		&entities.CommunityMember{},
		&entities.CommunityInvitation{},
		&entities.MapPoint{},
		&entities.CommunityEvent{},
		&entities.EventInvite{},
		&entities.Alert{},
		&entities.Guide{},
		&entities.GuideSource{},
		&entities.SOPTemplate{},
		&entities.SOPTemplateTask{},
		&entities.ActivatedSOP{},
		&entities.SOPTask{},
		&entities.SOPTaskNote{},
		&entities.Profile{},
		&entities.WizardRecord{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateWizardDedupe keeps only the newest wizard_records row per
// (user_id, kind). Older builds stored one row per save.
func migrateWizardDedupe(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='wizard_records'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}
	return db.Exec(`
DELETE FROM wizard_records
WHERE id NOT IN (
    SELECT MAX(id) FROM wizard_records GROUP BY user_id, kind
);
`).Error
}
