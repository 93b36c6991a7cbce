package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peer-review-workflow/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const reviewColumns = `id, article_id, reviewer_id, reviewer_number, status, decision,
	comments_to_author, comments_to_editor, due_date, submitted_at, created_at`

// PostgresReviewRepository implements ReviewRepository using PostgreSQL.
type PostgresReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository.
func NewPostgresReviewRepository(pool *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

// CreateBatch inserts the full reviewer panel and flips the article to
// under_review in a single transaction. Either every row lands or none do.
func (r *PostgresReviewRepository) CreateBatch(ctx context.Context, reviews []domain.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, rev := range reviews {
		_, err := tx.Exec(ctx, `
			INSERT INTO reviews (id, article_id, reviewer_id, reviewer_number, status, due_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, rev.ID, rev.ArticleID, rev.ReviewerID, rev.ReviewerNumber, rev.Status, rev.DueDate, rev.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert review slot %d: %w", rev.ReviewerNumber, err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE articles SET status = $2, updated_at = NOW() WHERE id = $1
	`, reviews[0].ArticleID, domain.ArticleStatusUnderReview)
	if err != nil {
		return fmt.Errorf("update article status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID fetches a single review.
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM reviews WHERE id = $1
	`, reviewColumns), id)

	rev, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("query review: %w", err)
	}
	return rev, nil
}

// ListByArticle returns all reviews for an article ordered by slot number.
func (r *PostgresReviewRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM reviews WHERE article_id = $1 ORDER BY reviewer_number
	`, reviewColumns), articleID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ListByReviewer returns a reviewer's assignments, optionally filtered by
// status, ordered by due date.
func (r *PostgresReviewRepository) ListByReviewer(ctx context.Context, reviewerID string, statuses []domain.ReviewStatus) ([]domain.Review, error) {
	builder := psql.Select(reviewColumns).
		From("reviews").
		Where(sq.Eq{"reviewer_id": reviewerID}).
		OrderBy("due_date ASC")

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		builder = builder.Where(sq.Eq{"status": values})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// CountByArticle returns the number of reviews for an article.
func (r *PostgresReviewRepository) CountByArticle(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM reviews WHERE article_id = $1
	`, articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

// CountActiveByReviewer returns the number of reviews a reviewer has not
// yet completed or declined. Used by auto-assignment workload balancing.
func (r *PostgresReviewRepository) CountActiveByReviewer(ctx context.Context, reviewerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM reviews
		WHERE reviewer_id = $1 AND status IN ($2, $3)
	`, reviewerID, domain.ReviewStatusPending, domain.ReviewStatusInProgress).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active reviews: %w", err)
	}
	return count, nil
}

// Complete marks a review completed with its decision and comments. The
// status guard in the WHERE clause makes completion idempotent: a second
// submission attempt matches no row and reports false, leaving the stored
// decision and comments untouched.
func (r *PostgresReviewRepository) Complete(ctx context.Context, id string, decision domain.ReviewDecision, commentsToAuthor string, commentsToEditor *string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reviews
		SET status = $2, decision = $3, comments_to_author = $4, comments_to_editor = $5, submitted_at = NOW()
		WHERE id = $1 AND status IN ($6, $7)
	`, id, domain.ReviewStatusCompleted, decision, commentsToAuthor, commentsToEditor,
		domain.ReviewStatusPending, domain.ReviewStatusInProgress)
	if err != nil {
		return false, fmt.Errorf("complete review: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Start flips a pending review to in_progress.
func (r *PostgresReviewRepository) Start(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reviews SET status = $2 WHERE id = $1 AND status = $3
	`, id, domain.ReviewStatusInProgress, domain.ReviewStatusPending)
	if err != nil {
		return false, fmt.Errorf("start review: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rev domain.Review
	err := row.Scan(&rev.ID, &rev.ArticleID, &rev.ReviewerID, &rev.ReviewerNumber,
		&rev.Status, &rev.Decision, &rev.CommentsToAuthor, &rev.CommentsToEditor,
		&rev.DueDate, &rev.SubmittedAt, &rev.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func collectReviews(rows pgx.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}
	return reviews, nil
}
