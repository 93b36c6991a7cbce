package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"peer-review-workflow/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article in submitted status.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, abstract, keywords, status, journal_name, author_id,
			submission_date, is_apc_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, a.ID, a.Title, a.Abstract, a.Keywords, a.Status, a.JournalName, a.AuthorID,
		a.SubmissionDate, a.IsAPCPaid, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID fetches a single article. Returns domain.ErrArticleNotFound if
// the id does not resolve.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, abstract, keywords, status, journal_name, author_id,
			submission_date, acceptance_date, publication_date, doi, volume, issue,
			editor_comments, rejection_reason, is_apc_paid, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Abstract, &a.Keywords, &a.Status, &a.JournalName,
		&a.AuthorID, &a.SubmissionDate, &a.AcceptanceDate, &a.PublicationDate, &a.DOI,
		&a.Volume, &a.Issue, &a.EditorComments, &a.RejectionReason, &a.IsAPCPaid,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return &a, nil
}

// TransitionStatus applies a status change only if the article currently
// holds fromStatus. The WHERE clause on the old status makes the
// read-decide-write sequence a compare-and-swap: of two concurrent
// aggregation passes only one can win, and the loser observes swapped=false.
func (r *PostgresArticleRepository) TransitionStatus(ctx context.Context, id string, fromStatus domain.ArticleStatus, change domain.StatusChange) (bool, error) {
	sets := []string{"status = $3", "updated_at = NOW()"}
	args := []interface{}{id, fromStatus, change.Status}
	argNum := 4

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if change.AcceptanceDate != nil {
		addSet("acceptance_date", *change.AcceptanceDate)
	}
	if change.PublicationDate != nil {
		addSet("publication_date", *change.PublicationDate)
	}
	if change.DOI != nil {
		addSet("doi", *change.DOI)
	}
	if change.Volume != nil {
		addSet("volume", *change.Volume)
	}
	if change.Issue != nil {
		addSet("issue", *change.Issue)
	}
	if change.EditorComments != nil {
		addSet("editor_comments", *change.EditorComments)
	}
	if change.RejectionReason != nil {
		addSet("rejection_reason", *change.RejectionReason)
	}

	query := fmt.Sprintf(`
		UPDATE articles
		SET %s
		WHERE id = $1 AND status = $2
	`, strings.Join(sets, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition article status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
