package repository

import (
	"context"

	"peer-review-workflow/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// TransitionStatus applies a status change only if the article is
	// currently in fromStatus (compare-and-swap keyed on article id).
	// It reports whether the swap happened. Concurrent aggregation passes
	// over the same article resolve to at most one successful transition.
	TransitionStatus(ctx context.Context, id string, fromStatus domain.ArticleStatus, change domain.StatusChange) (bool, error)
}

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// CreateBatch inserts the full reviewer panel in one transaction and
	// flips the article to under_review. All-or-nothing.
	CreateBatch(ctx context.Context, reviews []domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Review, error)
	ListByReviewer(ctx context.Context, reviewerID string, statuses []domain.ReviewStatus) ([]domain.Review, error)
	CountByArticle(ctx context.Context, articleID string) (int, error)
	CountActiveByReviewer(ctx context.Context, reviewerID string) (int, error)
	// Complete marks a pending or in-progress review completed with its
	// decision. It reports false if the review was already completed.
	Complete(ctx context.Context, id string, decision domain.ReviewDecision, commentsToAuthor string, commentsToEditor *string) (bool, error)
	// Start flips a pending review to in_progress. Reports false if the
	// review is not in a startable state.
	Start(ctx context.Context, id string) (bool, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListReviewers returns the subset of ids that resolve to active users
	// holding the reviewer role.
	ListReviewers(ctx context.Context, ids []string) ([]domain.User, error)
	ListActiveReviewers(ctx context.Context) ([]domain.User, error)
}

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
