package database

import (
	"fmt"

	"github.com/probuild/bidding-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes creates the lookup indexes the report queries lean on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model any
		name  string
	}{
		{&models.Project{}, "idx_projects_customer_id"},
		{&models.Project{}, "idx_projects_contractor_id"},
		{&models.Project{}, "idx_projects_status"},
		{&models.Bid{}, "idx_bids_contractor_id"},
		{&models.ContractorSkill{}, "idx_contractor_skills_skill_id"},
		{&models.Supplied{}, "idx_supplieds_quantity"},
	}

	columns := map[string]string{
		"idx_projects_customer_id":       "customer_id",
		"idx_projects_contractor_id":     "contractor_id",
		"idx_projects_status":            "status",
		"idx_bids_contractor_id":         "contractor_id",
		"idx_contractor_skills_skill_id": "skill_id",
		"idx_supplieds_quantity":         "quantity",
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, columns[idx.name])
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
