package apperrors

import (
	"net/http"
)

/*
Предопределенные доменные ошибки. Сервисы возвращают их напрямую,
хендлеры переводят в HTTP через HandleError.
*/

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Один и тот же ответ для "нет такого пользователя" и "неверный пароль",
// чтобы не раскрывать, какие email зарегистрированы.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrUsernameAlreadyExists - имя пользователя уже занято.
var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already taken",
	http.StatusConflict,
)

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Reviews ---

// ErrReviewNotFound - отзыв не найден.
var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

// ErrNotReviewOwner - редактировать отзыв может только автор.
var ErrNotReviewOwner = New(
	CodeForbidden,
	"review",
	"Only the author can modify this review",
	http.StatusForbidden,
)

// ErrCannotDeleteReview - удалять отзыв может автор или администратор.
var ErrCannotDeleteReview = New(
	CodeForbidden,
	"review",
	"You must be an admin or the review owner to delete this review",
	http.StatusForbidden,
)

// ErrInvalidRating - рейтинг вне диапазона [1,5].
var ErrInvalidRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)
