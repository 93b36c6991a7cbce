package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/mocks"
	"peer-review-workflow/internal/service"
	"peer-review-workflow/internal/validator"
)

func TestArticleSubmit(t *testing.T) {
	ctx := context.Background()
	v := validator.NewValidator()

	t.Run("creates a submitted article", func(t *testing.T) {
		articleRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(articleRepo, v)

		articleRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
				_, err := uuid.Parse(a.ID)
				return err == nil &&
					a.Status == domain.ArticleStatusSubmitted &&
					a.AuthorID == "author-1" &&
					!a.SubmissionDate.IsZero()
			})).
			Return(nil)

		article, err := svc.Submit(ctx, "author-1", &validator.SubmitArticleRequest{
			Title:       "Adaptive Caching in Edge Networks",
			Abstract:    "We study cache placement at the network edge.",
			Keywords:    []string{"caching", "edge computing"},
			JournalName: "Journal of Computing",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusSubmitted, article.Status)
	})

	t.Run("rejects incomplete submissions", func(t *testing.T) {
		articleRepo := mocks.NewMockArticleRepository(t)
		svc := service.NewArticleService(articleRepo, v)

		_, err := svc.Submit(ctx, "author-1", &validator.SubmitArticleRequest{
			Title: "Missing everything else",
		})

		assert.Error(t, err)
		articleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNotificationList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns notifications with unread count", func(t *testing.T) {
		notificationRepo := mocks.NewMockNotificationRepository(t)
		svc := service.NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			ListByUser(mock.Anything, "user-1", service.NotificationPageSize).
			Return([]domain.Notification{{ID: "n1"}, {ID: "n2"}}, nil)
		notificationRepo.EXPECT().
			CountUnread(mock.Anything, "user-1").
			Return(1, nil)

		notifications, unread, err := svc.List(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, notifications, 2)
		assert.Equal(t, 1, unread)
	})
}

func TestNotificationMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a single notification", func(t *testing.T) {
		notificationRepo := mocks.NewMockNotificationRepository(t)
		svc := service.NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			MarkRead(mock.Anything, "user-1", "n1").
			Return(nil)

		require.NoError(t, svc.MarkRead(ctx, "user-1", "n1"))
	})

	t.Run("marks all when no id is given", func(t *testing.T) {
		notificationRepo := mocks.NewMockNotificationRepository(t)
		svc := service.NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			MarkAllRead(mock.Anything, "user-1").
			Return(nil)

		require.NoError(t, svc.MarkRead(ctx, "user-1", ""))
	})
}
