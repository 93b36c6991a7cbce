package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/repository"
)

func seedPanel(t *testing.T, testDB *TestDB, articleID string) []domain.Review {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	due := now.AddDate(0, 0, 21)

	reviews := make([]domain.Review, 0, domain.ReviewerCount)
	for i := 1; i <= domain.ReviewerCount; i++ {
		reviews = append(reviews, domain.Review{
			ID:             uuid.New().String(),
			ArticleID:      articleID,
			ReviewerID:     testDB.SeedUser(t, domain.RoleReviewer),
			ReviewerNumber: i,
			Status:         domain.ReviewStatusPending,
			DueDate:        due,
			CreatedAt:      now,
		})
	}
	return reviews
}

func TestPostgresReviewRepository_CreateBatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	articleRepo := repository.NewPostgresArticleRepository(testDB.Pool)
	reviewRepo := repository.NewPostgresReviewRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("inserts the panel and flips the article to under review", func(t *testing.T) {
		testDB.TruncateTables(t, "reviews", "articles", "users")
		authorID := testDB.SeedUser(t, domain.RoleAuthor)
		articleID := testDB.SeedArticle(t, authorID, domain.ArticleStatusSubmitted)
		panel := seedPanel(t, testDB, articleID)

		require.NoError(t, reviewRepo.CreateBatch(ctx, panel))

		reviews, err := reviewRepo.ListByArticle(ctx, articleID)
		require.NoError(t, err)
		require.Len(t, reviews, domain.ReviewerCount)
		for i, rev := range reviews {
			assert.Equal(t, i+1, rev.ReviewerNumber)
			assert.Equal(t, domain.ReviewStatusPending, rev.Status)
		}

		article, err := articleRepo.GetByID(ctx, articleID)
		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusUnderReview, article.Status)
	})

	t.Run("rolls back the whole batch on a duplicate slot", func(t *testing.T) {
		testDB.TruncateTables(t, "reviews", "articles", "users")
		authorID := testDB.SeedUser(t, domain.RoleAuthor)
		articleID := testDB.SeedArticle(t, authorID, domain.ArticleStatusSubmitted)
		panel := seedPanel(t, testDB, articleID)
		panel[3].ReviewerNumber = 1

		require.Error(t, reviewRepo.CreateBatch(ctx, panel))

		count, err := reviewRepo.CountByArticle(ctx, articleID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		article, err := articleRepo.GetByID(ctx, articleID)
		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusSubmitted, article.Status)
	})
}

func TestPostgresReviewRepository_StartAndComplete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	reviewRepo := repository.NewPostgresReviewRepository(testDB.Pool)
	ctx := context.Background()

	setup := func(t *testing.T) []domain.Review {
		testDB.TruncateTables(t, "reviews", "articles", "users")
		authorID := testDB.SeedUser(t, domain.RoleAuthor)
		articleID := testDB.SeedArticle(t, authorID, domain.ArticleStatusSubmitted)
		panel := seedPanel(t, testDB, articleID)
		require.NoError(t, reviewRepo.CreateBatch(ctx, panel))
		return panel
	}

	t.Run("starts a pending review once", func(t *testing.T) {
		panel := setup(t)

		started, err := reviewRepo.Start(ctx, panel[0].ID)
		require.NoError(t, err)
		assert.True(t, started)

		got, err := reviewRepo.GetByID(ctx, panel[0].ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusInProgress, got.Status)

		started, err = reviewRepo.Start(ctx, panel[0].ID)
		require.NoError(t, err)
		assert.False(t, started)
	})

	t.Run("completes a review with its decision", func(t *testing.T) {
		panel := setup(t)

		editorNote := "Methodology section needs a closer look."
		ok, err := reviewRepo.Complete(ctx, panel[0].ID, domain.DecisionAccept,
			"Clear experimental design and strong results throughout the paper.", &editorNote)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := reviewRepo.GetByID(ctx, panel[0].ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusCompleted, got.Status)
		require.NotNil(t, got.Decision)
		assert.Equal(t, domain.DecisionAccept, *got.Decision)
		require.NotNil(t, got.CommentsToEditor)
		assert.Equal(t, editorNote, *got.CommentsToEditor)
		assert.NotNil(t, got.SubmittedAt)
	})

	t.Run("second completion reports false and keeps the first decision", func(t *testing.T) {
		panel := setup(t)

		ok, err := reviewRepo.Complete(ctx, panel[0].ID, domain.DecisionAccept,
			"Clear experimental design and strong results throughout the paper.", nil)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = reviewRepo.Complete(ctx, panel[0].ID, domain.DecisionReject,
			"Changed my mind entirely, this should not have been accepted at all.", nil)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := reviewRepo.GetByID(ctx, panel[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got.Decision)
		assert.Equal(t, domain.DecisionAccept, *got.Decision)
	})

	t.Run("returns not found for unknown reviews", func(t *testing.T) {
		_, err := reviewRepo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})
}

func TestPostgresReviewRepository_ListsAndCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	reviewRepo := repository.NewPostgresReviewRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("filters a reviewer's assignments by status", func(t *testing.T) {
		testDB.TruncateTables(t, "reviews", "articles", "users")
		authorID := testDB.SeedUser(t, domain.RoleAuthor)
		articleID := testDB.SeedArticle(t, authorID, domain.ArticleStatusSubmitted)
		panel := seedPanel(t, testDB, articleID)
		require.NoError(t, reviewRepo.CreateBatch(ctx, panel))

		reviewerID := panel[0].ReviewerID
		_, err := reviewRepo.Start(ctx, panel[0].ID)
		require.NoError(t, err)

		open, err := reviewRepo.ListByReviewer(ctx, reviewerID,
			[]domain.ReviewStatus{domain.ReviewStatusPending, domain.ReviewStatusInProgress})
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, domain.ReviewStatusInProgress, open[0].Status)

		completed, err := reviewRepo.ListByReviewer(ctx, reviewerID,
			[]domain.ReviewStatus{domain.ReviewStatusCompleted})
		require.NoError(t, err)
		assert.Empty(t, completed)

		all, err := reviewRepo.ListByReviewer(ctx, reviewerID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("counts active assignments per reviewer", func(t *testing.T) {
		testDB.TruncateTables(t, "reviews", "articles", "users")
		authorID := testDB.SeedUser(t, domain.RoleAuthor)
		articleID := testDB.SeedArticle(t, authorID, domain.ArticleStatusSubmitted)
		panel := seedPanel(t, testDB, articleID)
		require.NoError(t, reviewRepo.CreateBatch(ctx, panel))

		reviewerID := panel[1].ReviewerID

		active, err := reviewRepo.CountActiveByReviewer(ctx, reviewerID)
		require.NoError(t, err)
		assert.Equal(t, 1, active)

		ok, err := reviewRepo.Complete(ctx, panel[1].ID, domain.DecisionAccept,
			"Clear experimental design and strong results throughout the paper.", nil)
		require.NoError(t, err)
		require.True(t, ok)

		active, err = reviewRepo.CountActiveByReviewer(ctx, reviewerID)
		require.NoError(t, err)
		assert.Equal(t, 0, active)

		total, err := reviewRepo.CountByArticle(ctx, articleID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewerCount, total)
	})
}
