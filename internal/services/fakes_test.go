package services_test

import (
	"sort"
	"sync"
	"time"

	"sitecraft_backend/internal/models"
	"sitecraft_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory реализации репозиториев для юнит-тестов сервисов.
// Повторяют контракт GORM-реализаций: сентинельные ошибки, сортировка
// по created_at, маппинг нарушений уникальности в ErrUserAlreadyExists.

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
}

// Next возвращает строго возрастающее время, чтобы порядок created_at
// был детерминированным.
func (c *fakeClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	clock *fakeClock

	failCreate error
}

func newFakeUserRepo(clock *fakeClock) *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), clock: clock}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate != nil {
		return r.failCreate
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = r.clock.Next()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*models.Review
	users   *fakeUserRepo
	clock   *fakeClock
}

func newFakeReviewRepo(users *fakeUserRepo, clock *fakeClock) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review), users: users, clock: clock}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = r.clock.Next()
	review.UpdatedAt = review.CreatedAt
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) FindByID(id string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	clone := *review
	r.preloadAuthor(&clone)
	return &clone, nil
}

func (r *fakeReviewRepo) FindAll() ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		clone := *review
		r.preloadAuthor(&clone)
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	review.UpdatedAt = r.clock.Next()
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) preloadAuthor(review *models.Review) {
	if u, err := r.users.FindByID(review.UserID); err == nil {
		review.Author = *u
	}
}

type fakeQuoteRepo struct {
	mu     sync.Mutex
	quotes []models.Quote
	clock  *fakeClock

	failCreate error
}

func newFakeQuoteRepo(clock *fakeClock) *fakeQuoteRepo {
	return &fakeQuoteRepo{clock: clock}
}

func (r *fakeQuoteRepo) Create(quote *models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	quote.CreatedAt = r.clock.Next()
	quote.UpdatedAt = quote.CreatedAt
	r.quotes = append(r.quotes, *quote)
	return nil
}

func (r *fakeQuoteRepo) FindAll() ([]models.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Quote, len(r.quotes))
	copy(out, r.quotes)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// recordingEmailProvider фиксирует отправленные уведомления;
// опционально имитирует сбой шлюза.
type recordingEmailProvider struct {
	mu       sync.Mutex
	sent     []sentEmail
	failWith error
}

type sentEmail struct {
	Subject string
	Body    string
}

func (p *recordingEmailProvider) Send(subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, sentEmail{Subject: subject, Body: body})
	return p.failWith
}

func (p *recordingEmailProvider) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func (p *recordingEmailProvider) Last() sentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sent) == 0 {
		return sentEmail{}
	}
	return p.sent[len(p.sent)-1]
}
