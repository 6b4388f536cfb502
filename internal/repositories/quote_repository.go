package repositories

import (
	"sitecraft_backend/internal/models"

	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(quote *models.Quote) error
	FindAll() ([]models.Quote, error)
}

type QuoteRepositoryImpl struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &QuoteRepositoryImpl{db: db}
}

func (r *QuoteRepositoryImpl) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

// FindAll возвращает все заявки, новые первыми.
func (r *QuoteRepositoryImpl) FindAll() ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}
