package dto

import (
	"time"

	"sitecraft_backend/internal/models"
)

type CreateReviewRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateReviewRequest - частичное обновление: применяются только
// присутствующие поля, поэтому все они указатели.
type UpdateReviewRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeleteReviewResponse сообщает, кто выполнил удаление: автор или админ.
type DeleteReviewResponse struct {
	DeletedBy string `json:"deleted_by"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	author := "Anonymous"
	if review.Author.Username != "" {
		author = review.Author.Username
	}
	return &ReviewResponse{
		ID:        review.ID,
		Title:     review.Title,
		Content:   review.Content,
		Rating:    review.Rating,
		UserID:    review.UserID,
		Author:    author,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func NewReviewResponseList(reviews []models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
