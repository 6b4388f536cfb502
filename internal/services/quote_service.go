package services

import (
	"fmt"

	"sitecraft_backend/internal/email"
	"sitecraft_backend/internal/logger"
	"sitecraft_backend/internal/models"
	"sitecraft_backend/internal/repositories"
	"sitecraft_backend/internal/services/dto"
	"sitecraft_backend/pkg/apperrors"
)

type QuoteService interface {
	CreateQuote(req *dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	ListQuotes() ([]*dto.QuoteResponse, error)
}

type QuoteServiceImpl struct {
	quoteRepo     repositories.QuoteRepository
	emailProvider email.Provider
}

func NewQuoteService(quoteRepo repositories.QuoteRepository, emailProvider email.Provider) QuoteService {
	return &QuoteServiceImpl{
		quoteRepo:     quoteRepo,
		emailProvider: emailProvider,
	}
}

// CreateQuote сохраняет анонимную заявку. Аутентификация не требуется.
// После сохранения владельцу сайта уходит уведомление: fire-and-forget,
// сбой отправки логируется и не откатывает созданную заявку.
func (s *QuoteServiceImpl) CreateQuote(req *dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	quote := &models.Quote{
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		ServiceType:            req.ServiceType,
		ProjectDetails:         req.ProjectDetails,
		PreferredContactMethod: req.PreferredContactMethod,
		BudgetRange:            req.BudgetRange,
		Timeline:               req.Timeline,
		Status:                 models.QuoteStatusPending,
	}
	if quote.PreferredContactMethod == "" {
		quote.PreferredContactMethod = models.QuoteContactEmail
	}

	if err := s.quoteRepo.Create(quote); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(quote)

	return dto.NewQuoteResponse(quote), nil
}

// ListQuotes возвращает все заявки, новые первыми.
func (s *QuoteServiceImpl) ListQuotes() ([]*dto.QuoteResponse, error) {
	quotes, err := s.quoteRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQuoteResponseList(quotes), nil
}

func (s *QuoteServiceImpl) notify(quote *models.Quote) {
	budget := quote.BudgetRange
	if budget == "" {
		budget = "Not specified"
	}
	timeline := quote.Timeline
	if timeline == "" {
		timeline = "Not specified"
	}

	body := fmt.Sprintf(
		"New Quote Request:\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nService Type: %s\n"+
			"Project Details: %s\nPreferred Contact: %s\nBudget Range: %s\nTimeline: %s\n",
		quote.Name, quote.Email, quote.Phone, quote.ServiceType,
		quote.ProjectDetails, quote.PreferredContactMethod, budget, timeline,
	)

	go func() {
		if err := s.emailProvider.Send("New Quote Request", body); err != nil {
			logger.Error("failed to send quote notification", "error", err.Error(), "quote_id", quote.ID)
		}
	}()
}
