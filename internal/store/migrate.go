package store

import (
	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the portal schema. The citext extension
// backs case-insensitive email uniqueness.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&domain.Account{},
		&domain.PendingRegistration{},
		&domain.Item{},
		&domain.Comment{},
		&domain.Vote{},
		&domain.CarouselSlide{},
		&domain.SiteContent{},
	)
}
