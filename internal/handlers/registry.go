package handlers

// AppHandlers - контейнер всех HTTP-хендлеров приложения.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	ReviewHandler *ReviewHandler
	QuoteHandler  *QuoteHandler
}
