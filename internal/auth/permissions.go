package auth

import "sitecraft_backend/internal/models"

// Чистые предикаты авторизации. Решение принимается здесь,
// в обработчиках false переводится в 403.

// CanModifyReview - редактировать отзыв может только его автор.
func CanModifyReview(actingUser *models.User, review *models.Review) bool {
	if actingUser == nil || review == nil {
		return false
	}
	return actingUser.ID == review.UserID
}

// CanDeleteReview - удалять отзыв может автор или администратор.
func CanDeleteReview(actingUser *models.User, review *models.Review) bool {
	if actingUser == nil || review == nil {
		return false
	}
	return actingUser.ID == review.UserID || actingUser.IsAdmin
}

// IsAdmin проверяет наличие админ-флага.
func IsAdmin(actingUser *models.User) bool {
	return actingUser != nil && actingUser.IsAdmin
}
