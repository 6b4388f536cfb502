package handlers

import (
	"net/http"

	"sitecraft_backend/internal/services"
	"sitecraft_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	*BaseHandler
	quoteService services.QuoteService
}

func NewQuoteHandler(base *BaseHandler, quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler:  base,
		quoteService: quoteService,
	}
}

// Заявки анонимны: оба маршрута публичные.
func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
	}
}

// CreateQuote - POST /api/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	quote, err := h.quoteService.CreateQuote(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "Quote request submitted successfully", quote)
}

// ListQuotes - GET /api/quotes
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteService.ListQuotes()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Quotes retrieved successfully", quotes)
}
