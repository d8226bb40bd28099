package database

import (
	"log/slog"

	"github.com/clefio/clefs-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var demoProperties = []models.Property{
	{Address: "123 Rue de Paris", OwnerName: "Jean Dupont"},
	{Address: "45 Avenue des Champs-Élysées", OwnerName: "Marie Martin"},
	{Address: "78 Boulevard Saint-Michel", OwnerName: "Pierre Bernard"},
}

var demoSuppliers = []models.Supplier{
	{Name: "Clés Express", Email: "contact@clesexpress.fr", Phone: "01 23 45 67 89"},
	{Name: "Serrurerie Moderne", Email: "info@serrurerie-moderne.fr", Phone: "01 98 76 54 32"},
}

// SeedDemo inserts demo rows into empty properties/suppliers tables.
// Non-empty tables are left alone.
func SeedDemo(db *gorm.DB) error {
	if err := seedIfEmpty(db, &models.Property{}, func() error {
		for _, p := range demoProperties {
			p.ID = uuid.New()
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return seedIfEmpty(db, &models.Supplier{}, func() error {
		for _, s := range demoSuppliers {
			s.ID = uuid.New()
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedIfEmpty(db *gorm.DB, model interface{}, insert func() error) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("seed skipped, table not empty", "model", modelName(model))
		return nil
	}
	return insert()
}

func modelName(model interface{}) string {
	switch model.(type) {
	case *models.Property:
		return "properties"
	case *models.Supplier:
		return "suppliers"
	default:
		return "unknown"
	}
}
