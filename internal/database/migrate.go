package database

import (
	"fmt"

	"sitecraft_backend/internal/config"
	"sitecraft_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с Postgres через GORM.
// TranslateError включен, чтобы нарушения уникальных индексов приходили
// как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
// Схема объявляет уникальные индексы на users.username и users.email
// и каскадное удаление отзывов вместе с пользователем.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Review{},
		&models.Quote{},
	)
}
