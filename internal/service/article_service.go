package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/logger"
	"peer-review-workflow/internal/repository"
	"peer-review-workflow/internal/validator"
)

// ArticleService implements article submission.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	validator   *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, v *validator.Validator) *ArticleService {
	return &ArticleService{articleRepo: articleRepo, validator: v}
}

// Submit creates a new article in submitted status.
func (s *ArticleService) Submit(ctx context.Context, authorID string, req *validator.SubmitArticleRequest) (*domain.Article, error) {
	if err := s.validator.ValidateSubmitArticle(req); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &domain.Article{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Abstract:       req.Abstract,
		Keywords:       req.Keywords,
		Status:         domain.ArticleStatusSubmitted,
		JournalName:    req.JournalName,
		AuthorID:       authorID,
		SubmissionDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	logger.WithArticleID(article.ID).Info("article submitted", "author_id", authorID)
	return article, nil
}

// Get retrieves an article by id.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}
