package app

import "sitecraft_backend/internal/logger"

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(subject, body string) error {
	logger.Debug("mock email provider: message dropped", "subject", subject)
	return nil
}
