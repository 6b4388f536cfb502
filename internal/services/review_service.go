package services

import (
	"fmt"
	"strings"

	"sitecraft_backend/internal/auth"
	"sitecraft_backend/internal/email"
	"sitecraft_backend/internal/logger"
	"sitecraft_backend/internal/models"
	"sitecraft_backend/internal/repositories"
	"sitecraft_backend/internal/services/dto"
	"sitecraft_backend/pkg/apperrors"
)

const (
	DeletedByOwner = "owner"
	DeletedByAdmin = "admin"
)

type ReviewService interface {
	CreateReview(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListReviews() ([]*dto.ReviewResponse, error)
	UpdateReview(reviewID, actingUserID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(reviewID, actingUserID string) (*dto.DeleteReviewResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo    repositories.ReviewRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:    reviewRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// CreateReview создает отзыв от имени аутентифицированного пользователя.
// Автор фиксируется при создании и больше не меняется.
func (s *ReviewServiceImpl) CreateReview(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := validateReviewFields(req.Title, req.Content, req.Rating); err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		Title:   req.Title,
		Content: req.Content,
		Rating:  req.Rating,
		UserID:  author.ID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	review.Author = *author

	// Уведомление владельцу сайта: fire-and-forget, ошибка отправки
	// не влияет на результат создания.
	body := fmt.Sprintf(
		"New Review Submission:\n\nUser: %s\nTitle: %s\nRating: %d\nReview: %s\n",
		author.Username, review.Title, review.Rating, review.Content,
	)
	s.notify("New Review Submission", body)

	return dto.NewReviewResponse(review), nil
}

// ListReviews возвращает все отзывы, новые первыми.
func (s *ReviewServiceImpl) ListReviews() ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponseList(reviews), nil
}

// UpdateReview применяет частичное обновление. Разрешено только автору;
// применяются только присутствующие в запросе поля.
func (s *ReviewServiceImpl) UpdateReview(reviewID, actingUserID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, actingUser, err := s.loadReviewAndUser(reviewID, actingUserID)
	if err != nil {
		return nil, err
	}

	if !auth.CanModifyReview(actingUser, review) {
		return nil, apperrors.ErrNotReviewOwner
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("Title must not be empty")
		}
		review.Title = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, apperrors.NewValidationError("Content must not be empty")
		}
		review.Content = *req.Content
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperrors.ErrInvalidRating
		}
		review.Rating = *req.Rating
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewReviewResponse(review), nil
}

// DeleteReview удаляет отзыв. Разрешено автору и администратору;
// в ответе фиксируется, кто именно удалил (для аудита).
func (s *ReviewServiceImpl) DeleteReview(reviewID, actingUserID string) (*dto.DeleteReviewResponse, error) {
	review, actingUser, err := s.loadReviewAndUser(reviewID, actingUserID)
	if err != nil {
		return nil, err
	}

	if !auth.CanDeleteReview(actingUser, review) {
		return nil, apperrors.ErrCannotDeleteReview
	}

	if err := s.reviewRepo.Delete(review.ID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Автор, удаляющий свой отзыв, остается "owner", даже если он админ.
	deletedBy := DeletedByAdmin
	if actingUser.ID == review.UserID {
		deletedBy = DeletedByOwner
	}

	return &dto.DeleteReviewResponse{DeletedBy: deletedBy}, nil
}

// --- Helper functions ---

func (s *ReviewServiceImpl) loadReviewAndUser(reviewID, actingUserID string) (*models.Review, *models.User, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, nil, apperrors.ErrReviewNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	actingUser, err := s.userRepo.FindByID(actingUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Токен валиден, но пользователя уже нет.
			return nil, nil, apperrors.ErrInvalidToken
		}
		return nil, nil, apperrors.InternalError(err)
	}

	return review, actingUser, nil
}

func (s *ReviewServiceImpl) notify(subject, body string) {
	go func() {
		if err := s.emailProvider.Send(subject, body); err != nil {
			logger.Error("failed to send review notification", "error", err.Error())
		}
	}()
}

func validateReviewFields(title, content string, rating int) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("Title must not be empty")
	}
	if strings.TrimSpace(content) == "" {
		return apperrors.NewValidationError("Content must not be empty")
	}
	if rating < 1 || rating > 5 {
		return apperrors.ErrInvalidRating
	}
	return nil
}
