package seeds

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"grievance/internal/infrastructure/persistence/models"
)

//go:embed fixtures/defaults.yaml
var defaultFixture []byte

type categoryFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type officeFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
}

type fixtureFile struct {
	Categories []categoryFixture `yaml:"categories"`
	Offices    []officeFixture   `yaml:"offices"`
}

// SeedDefaults seeds categories and offices from the embedded fixture.
func SeedDefaults(db *gorm.DB) error {
	return seedFromBytes(db, defaultFixture)
}

// SeedFromFile seeds categories and offices from a YAML fixture on disk.
func SeedFromFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed fixture %s: %w", path, err)
	}
	return seedFromBytes(db, data)
}

func seedFromBytes(db *gorm.DB, data []byte) error {
	var fixture fixtureFile
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	for _, c := range fixture.Categories {
		record := models.CategoryModel{
			Name:        c.Name,
			Description: c.Description,
			IsActive:    true,
		}
		if err := db.FirstOrCreate(&record, models.CategoryModel{Name: c.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	for _, o := range fixture.Offices {
		record := models.OfficeModel{
			Name:        o.Name,
			Description: o.Description,
			Email:       o.Email,
			Phone:       o.Phone,
			IsActive:    true,
		}
		if err := db.FirstOrCreate(&record, models.OfficeModel{Name: o.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed office %q: %w", o.Name, err)
		}
	}

	return nil
}
