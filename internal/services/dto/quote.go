package dto

import (
	"time"

	"sitecraft_backend/internal/models"
)

type CreateQuoteRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	ServiceType    string `json:"service_type" validate:"required"`
	ProjectDetails string `json:"project_details" validate:"required"`

	PreferredContactMethod string `json:"preferred_contact_method"`
	BudgetRange            string `json:"budget_range"`
	Timeline               string `json:"timeline"`
}

type QuoteResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	ServiceType            string    `json:"service_type"`
	ProjectDetails         string    `json:"project_details"`
	PreferredContactMethod string    `json:"preferred_contact_method"`
	BudgetRange            string    `json:"budget_range,omitempty"`
	Timeline               string    `json:"timeline,omitempty"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func NewQuoteResponse(quote *models.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:                     quote.ID,
		Name:                   quote.Name,
		Email:                  quote.Email,
		Phone:                  quote.Phone,
		ServiceType:            quote.ServiceType,
		ProjectDetails:         quote.ProjectDetails,
		PreferredContactMethod: quote.PreferredContactMethod,
		BudgetRange:            quote.BudgetRange,
		Timeline:               quote.Timeline,
		Status:                 quote.Status,
		CreatedAt:              quote.CreatedAt,
		UpdatedAt:              quote.UpdatedAt,
	}
}

func NewQuoteResponseList(quotes []models.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, NewQuoteResponse(&quotes[i]))
	}
	return out
}
