package services

import "sitecraft_backend/internal/email"

// ServiceContainer - контейнер всех сервисов для DI в хендлеры.
type ServiceContainer struct {
	AuthService   AuthService
	ReviewService ReviewService
	QuoteService  QuoteService
	EmailProvider email.Provider
}
