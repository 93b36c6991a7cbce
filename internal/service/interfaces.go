package service

import (
	"context"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/validator"
)

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role domain.Role
}

// ArticleServiceInterface defines article submission operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Submit creates a new article in submitted status.
	Submit(ctx context.Context, authorID string, req *validator.SubmitArticleRequest) (*domain.Article, error)
	// Get retrieves an article by id.
	Get(ctx context.Context, id string) (*domain.Article, error)
}

// ReviewServiceInterface defines the review workflow operations.
// Used for dependency injection and mocking in tests.
type ReviewServiceInterface interface {
	// AssignReviewers creates the full reviewer panel for an article and
	// flips it to under_review. dueInDays of 0 uses the configured default.
	AssignReviewers(ctx context.Context, articleID string, reviewerIDs []string, dueInDays int) ([]domain.Review, error)
	// AutoAssignReviewers selects a panel by keyword and workload scoring
	// and assigns it.
	AutoAssignReviewers(ctx context.Context, articleID string) ([]domain.Review, error)
	// ListAssignments returns a reviewer's open review assignments.
	ListAssignments(ctx context.Context, reviewerID string) ([]domain.Review, error)
	// GetReview returns a single review owned by the reviewer.
	GetReview(ctx context.Context, reviewID, reviewerID string) (*domain.Review, error)
	// StartReview flips a pending review to in_progress.
	StartReview(ctx context.Context, reviewID, reviewerID string) (*domain.Review, error)
	// SubmitDecision records one reviewer's verdict and runs the status
	// aggregation for the parent article.
	SubmitDecision(ctx context.Context, reviewID, reviewerID string, decision domain.ReviewDecision, commentsToAuthor string, commentsToEditor *string) (*domain.AggregationSummary, error)
	// Progress summarizes review completion for an article.
	Progress(ctx context.Context, articleID string) (*domain.ReviewProgress, error)
}

// DecisionServiceInterface defines the editorial decision operations.
// Used for dependency injection and mocking in tests.
type DecisionServiceInterface interface {
	// Decide applies a manual editorial decision to an article.
	Decide(ctx context.Context, articleID string, decision EditorialDecision, comments string, actor Actor) (*domain.Article, error)
}

// NotificationServiceInterface defines in-app notification operations.
// Used for dependency injection and mocking in tests.
type NotificationServiceInterface interface {
	// List returns a user's recent notifications and the unread count.
	List(ctx context.Context, userID string) ([]domain.Notification, int, error)
	// MarkRead marks one notification as read, or all when id is empty.
	MarkRead(ctx context.Context, userID, notificationID string) error
}
