package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peer-review-workflow/internal/dispatch"
	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/mocks"
	"peer-review-workflow/internal/service"
)

func decisionPtr(d domain.ReviewDecision) *domain.ReviewDecision {
	return &d
}

// completedPanel builds a fully assigned panel where the first len(decisions)
// reviews are completed with the given decisions and the rest stay pending.
func completedPanel(articleID string, decisions ...*domain.ReviewDecision) []domain.Review {
	reviews := make([]domain.Review, 0, domain.ReviewerCount)
	for i := 0; i < domain.ReviewerCount; i++ {
		rev := domain.Review{
			ID:             "review-" + string(rune('1'+i)),
			ArticleID:      articleID,
			ReviewerID:     "reviewer-" + string(rune('1'+i)),
			ReviewerNumber: i + 1,
			Status:         domain.ReviewStatusPending,
			DueDate:        time.Now().AddDate(0, 0, 21),
		}
		if i < len(decisions) {
			rev.Status = domain.ReviewStatusCompleted
			rev.Decision = decisions[i]
		}
		reviews = append(reviews, rev)
	}
	return reviews
}

func newReviewServiceWithMocks(t *testing.T) (*service.ReviewService, *mocks.MockArticleRepository, *mocks.MockReviewRepository, *mocks.MockUserRepository, *mocks.MockNotificationRepository, *mocks.MockMailer) {
	articleRepo := mocks.NewMockArticleRepository(t)
	reviewRepo := mocks.NewMockReviewRepository(t)
	userRepo := mocks.NewMockUserRepository(t)
	notificationRepo := mocks.NewMockNotificationRepository(t)
	mailer := mocks.NewMockMailer(t)

	svc := service.NewReviewService(articleRepo, reviewRepo, userRepo, notificationRepo, mailer, 21)
	return svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer
}

func TestAssignReviewers(t *testing.T) {
	ctx := context.Background()
	articleID := "22222222-2222-4222-8222-222222222222"
	reviewerIDs := []string{"r1", "r2", "r3", "r4"}

	t.Run("creates a four reviewer panel", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(&domain.Article{ID: articleID, Status: domain.ArticleStatusSubmitted}, nil)
		reviewRepo.EXPECT().
			CountByArticle(mock.Anything, articleID).
			Return(0, nil)
		userRepo.EXPECT().
			ListReviewers(mock.Anything, reviewerIDs).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer},
				{ID: "r4", Role: domain.RoleReviewer},
			}, nil)
		reviewRepo.EXPECT().
			CreateBatch(mock.Anything, mock.MatchedBy(func(reviews []domain.Review) bool {
				if len(reviews) != domain.ReviewerCount {
					return false
				}
				for i, rev := range reviews {
					if rev.ReviewerNumber != i+1 ||
						rev.ReviewerID != reviewerIDs[i] ||
						rev.Status != domain.ReviewStatusPending ||
						!rev.DueDate.Equal(reviews[0].DueDate) {
						return false
					}
				}
				return true
			})).
			Return(nil)

		reviews, err := svc.AssignReviewers(ctx, articleID, reviewerIDs, 14)

		require.NoError(t, err)
		assert.Len(t, reviews, domain.ReviewerCount)
	})

	t.Run("rejects panels that are not exactly four", func(t *testing.T) {
		svc, _, _, _, _, _ := newReviewServiceWithMocks(t)

		_, err := svc.AssignReviewers(ctx, articleID, []string{"r1", "r2", "r3"}, 0)
		assert.ErrorIs(t, err, domain.ErrReviewerCount)

		_, err = svc.AssignReviewers(ctx, articleID, []string{"r1", "r2", "r3", "r4", "r5"}, 0)
		assert.ErrorIs(t, err, domain.ErrReviewerCount)
	})

	t.Run("rejects a second assignment for the same article", func(t *testing.T) {
		svc, articleRepo, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(&domain.Article{ID: articleID, Status: domain.ArticleStatusUnderReview}, nil)
		reviewRepo.EXPECT().
			CountByArticle(mock.Anything, articleID).
			Return(domain.ReviewerCount, nil)

		_, err := svc.AssignReviewers(ctx, articleID, reviewerIDs, 0)
		assert.ErrorIs(t, err, domain.ErrReviewersAlreadyAssigned)
	})

	t.Run("rejects panels containing non-reviewers", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(&domain.Article{ID: articleID, Status: domain.ArticleStatusSubmitted}, nil)
		reviewRepo.EXPECT().
			CountByArticle(mock.Anything, articleID).
			Return(0, nil)
		userRepo.EXPECT().
			ListReviewers(mock.Anything, reviewerIDs).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer},
			}, nil)

		_, err := svc.AssignReviewers(ctx, articleID, reviewerIDs, 0)
		assert.ErrorIs(t, err, domain.ErrReviewerRole)
	})

	t.Run("rejects panels with duplicate reviewers", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)
		duplicated := []string{"r1", "r1", "r2", "r3"}

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(&domain.Article{ID: articleID, Status: domain.ArticleStatusSubmitted}, nil)
		reviewRepo.EXPECT().
			CountByArticle(mock.Anything, articleID).
			Return(0, nil)
		userRepo.EXPECT().
			ListReviewers(mock.Anything, duplicated).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer},
			}, nil)

		_, err := svc.AssignReviewers(ctx, articleID, duplicated, 0)
		assert.ErrorIs(t, err, domain.ErrReviewerRole)
	})
}

func TestSubmitDecision(t *testing.T) {
	ctx := context.Background()
	articleID := "33333333-3333-4333-8333-333333333333"
	reviewID := "review-1"
	reviewerID := "reviewer-1"
	comments := strings.Repeat("Solid methodology and clear results. ", 3)

	article := func(status domain.ArticleStatus) *domain.Article {
		return &domain.Article{
			ID:       articleID,
			Title:    "Adaptive Caching in Edge Networks",
			Status:   status,
			AuthorID: "author-1",
		}
	}
	author := &domain.User{ID: "author-1", Email: "author@example.org", Name: "A. Author"}

	ownReview := func(status domain.ReviewStatus) *domain.Review {
		return &domain.Review{
			ID:             reviewID,
			ArticleID:      articleID,
			ReviewerID:     reviewerID,
			ReviewerNumber: 1,
			Status:         status,
		}
	}

	authorNotification := func(n *domain.Notification) bool {
		return n.UserID == "author-1" && n.Link == "/articles/"+articleID
	}

	t.Run("publishes when all four reviewers accept", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview,
				mock.MatchedBy(func(change domain.StatusChange) bool {
					return change.Status == domain.ArticleStatusPublished &&
						change.DOI != nil && strings.HasPrefix(*change.DOI, "10.5555/c5k.") &&
						change.PublicationDate != nil &&
						change.Volume != nil && change.Issue != nil
				})).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return authorNotification(n) && n.Type == domain.NotificationSuccess
			})).
			Return(nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.MatchedBy(func(update dispatch.StatusUpdate) bool {
				return update.NewStatus == string(domain.ArticleStatusPublished) &&
					update.DOI != nil
			})).
			Return(nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusPublished, summary.NewStatus)
		assert.Equal(t, domain.ReviewerCount, summary.Accepted)
		assert.Equal(t, domain.ReviewerCount, summary.CompletedCount)
	})

	t.Run("rejects on two reject votes", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionReject, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionReject), decisionPtr(domain.DecisionReject),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview,
				mock.MatchedBy(func(change domain.StatusChange) bool {
					return change.Status == domain.ArticleStatusRejected && change.DOI == nil
				})).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return authorNotification(n) && n.Type == domain.NotificationError
			})).
			Return(nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.Anything).
			Return(nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionReject, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusRejected, summary.NewStatus)
		assert.Equal(t, 2, summary.Rejected)
	})

	t.Run("requests revisions when any reviewer asks for them", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionRevisionRequested, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionRevisionRequested), decisionPtr(domain.DecisionAccept),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview,
				mock.MatchedBy(func(change domain.StatusChange) bool {
					return change.Status == domain.ArticleStatusRevisionRequested
				})).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return authorNotification(n) && n.Type == domain.NotificationWarning
			})).
			Return(nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.Anything).
			Return(nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionRevisionRequested, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusRevisionRequested, summary.NewStatus)
		assert.Equal(t, 1, summary.RevisionRequested)
	})

	t.Run("asks for minor revisions on an accept-leaning panel", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		// All four completed, two accepts, no rejects, no revision
		// requests: the remaining two recorded no verdict.
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept),
				nil, nil), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview,
				mock.MatchedBy(func(change domain.StatusChange) bool {
					return change.Status == domain.ArticleStatusRevisionRequested &&
						change.DOI == nil
				})).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return authorNotification(n) && n.Type == domain.NotificationWarning
			})).
			Return(nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.MatchedBy(func(update dispatch.StatusUpdate) bool {
				return update.Message == "Your article shows promise, but minor revisions are required."
			})).
			Return(nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusRevisionRequested, summary.NewStatus)
		assert.Equal(t, 2, summary.Accepted)
		assert.Equal(t, 0, summary.Rejected)
		assert.Equal(t, 0, summary.RevisionRequested)
		assert.Equal(t, domain.ReviewerCount, summary.CompletedCount)
	})

	t.Run("leaves status alone when no rule covers the combination", func(t *testing.T) {
		svc, articleRepo, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		// Three accepts and one reject: not unanimous, below the reject
		// quorum, no revision requests.
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionReject)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusUnderReview, summary.NewStatus)
		articleRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("moves submitted article to under_review on first completion", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID, decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusSubmitted), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusSubmitted,
				mock.MatchedBy(func(change domain.StatusChange) bool {
					return change.Status == domain.ArticleStatusUnderReview
				})).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return authorNotification(n) && n.Type == domain.NotificationInfo
			})).
			Return(nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.MatchedBy(func(update dispatch.StatusUpdate) bool {
				return update.Message == "1 of 4 reviewers completed their review."
			})).
			Return(nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusUnderReview, summary.NewStatus)
		assert.Equal(t, 1, summary.CompletedCount)
	})

	t.Run("keeps under_review while the panel is incomplete", func(t *testing.T) {
		svc, articleRepo, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusUnderReview, summary.NewStatus)
		articleRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects resubmission of a completed review", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusCompleted), nil)

		_, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		assert.ErrorIs(t, err, domain.ErrReviewAlreadySubmitted)
		reviewRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns conflict when a concurrent submission wins", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(false, nil)

		_, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		assert.ErrorIs(t, err, domain.ErrReviewAlreadySubmitted)
	})

	t.Run("denies access to another reviewer's review", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		other := ownReview(domain.ReviewStatusInProgress)
		other.ReviewerID = "someone-else"
		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(other, nil)

		_, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})

	t.Run("skips side effects when the transition was already applied", func(t *testing.T) {
		svc, articleRepo, reviewRepo, _, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionAccept, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview, mock.Anything).
			Return(false, nil)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionAccept, comments, nil)

		require.NoError(t, err)
		// The racing pass owns the transition and its side effects.
		assert.Equal(t, domain.ArticleStatusUnderReview, summary.NewStatus)
		notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendStatusUpdate", mock.Anything, mock.Anything)
	})

	t.Run("continues when the notification and email sinks fail", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, notificationRepo, mailer := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(ownReview(domain.ReviewStatusInProgress), nil)
		reviewRepo.EXPECT().
			Complete(mock.Anything, reviewID, domain.DecisionReject, comments, (*string)(nil)).
			Return(true, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionReject), decisionPtr(domain.DecisionReject),
				decisionPtr(domain.DecisionReject), decisionPtr(domain.DecisionReject)), nil)
		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article(domain.ArticleStatusUnderReview), nil)
		articleRepo.EXPECT().
			TransitionStatus(mock.Anything, articleID, domain.ArticleStatusUnderReview, mock.Anything).
			Return(true, nil)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(assert.AnError)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		mailer.EXPECT().
			SendStatusUpdate(mock.Anything, mock.Anything).
			Return(assert.AnError)

		summary, err := svc.SubmitDecision(ctx, reviewID, reviewerID, domain.DecisionReject, comments, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.ArticleStatusRejected, summary.NewStatus)
	})
}

func TestAutoAssignReviewers(t *testing.T) {
	ctx := context.Background()
	articleID := "44444444-4444-4444-8444-444444444444"
	article := &domain.Article{
		ID:       articleID,
		Status:   domain.ArticleStatusSubmitted,
		AuthorID: "author-1",
		Keywords: []string{"caching", "edge computing"},
	}
	author := &domain.User{ID: "author-1", University: "Tartu University"}

	t.Run("assigns the four best scoring reviewers", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article, nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(nil, nil)
		userRepo.EXPECT().
			ListActiveReviewers(mock.Anything).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer, Bio: "caching and edge computing systems"},
				{ID: "r2", Role: domain.RoleReviewer, Bio: "distributed caching"},
				{ID: "r3", Role: domain.RoleReviewer, Bio: "databases"},
				{ID: "r4", Role: domain.RoleReviewer, Bio: "networking"},
				{ID: "r5", Role: domain.RoleReviewer, University: "Tartu University"},
				{ID: "author-1", Role: domain.RoleReviewer},
			}, nil)
		for _, id := range []string{"r1", "r2", "r3", "r4"} {
			reviewRepo.EXPECT().
				CountActiveByReviewer(mock.Anything, id).
				Return(1, nil)
		}
		reviewRepo.EXPECT().
			CountByArticle(mock.Anything, articleID).
			Return(0, nil)
		userRepo.EXPECT().
			ListReviewers(mock.Anything, mock.MatchedBy(func(ids []string) bool {
				// r1 has the highest keyword score and must lead the panel.
				return len(ids) == domain.ReviewerCount && ids[0] == "r1"
			})).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer},
				{ID: "r4", Role: domain.RoleReviewer},
			}, nil)
		reviewRepo.EXPECT().
			CreateBatch(mock.Anything, mock.Anything).
			Return(nil)

		reviews, err := svc.AutoAssignReviewers(ctx, articleID)

		require.NoError(t, err)
		assert.Len(t, reviews, domain.ReviewerCount)
	})

	t.Run("fails when fewer than four reviewers are eligible", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article, nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(nil, nil)
		userRepo.EXPECT().
			ListActiveReviewers(mock.Anything).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer, University: "tartu university"},
			}, nil)
		for _, id := range []string{"r1", "r2"} {
			reviewRepo.EXPECT().
				CountActiveByReviewer(mock.Anything, id).
				Return(0, nil)
		}

		_, err := svc.AutoAssignReviewers(ctx, articleID)
		assert.ErrorIs(t, err, domain.ErrNoEligibleReviewers)
	})

	t.Run("skips overloaded reviewers", func(t *testing.T) {
		svc, articleRepo, reviewRepo, userRepo, _, _ := newReviewServiceWithMocks(t)

		articleRepo.EXPECT().
			GetByID(mock.Anything, articleID).
			Return(article, nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "author-1").
			Return(author, nil)
		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(nil, nil)
		userRepo.EXPECT().
			ListActiveReviewers(mock.Anything).
			Return([]domain.User{
				{ID: "r1", Role: domain.RoleReviewer},
				{ID: "r2", Role: domain.RoleReviewer},
				{ID: "r3", Role: domain.RoleReviewer},
				{ID: "r4", Role: domain.RoleReviewer},
			}, nil)
		reviewRepo.EXPECT().
			CountActiveByReviewer(mock.Anything, "r1").
			Return(service.MaxActiveReviewsPerReviewer, nil)
		for _, id := range []string{"r2", "r3", "r4"} {
			reviewRepo.EXPECT().
				CountActiveByReviewer(mock.Anything, id).
				Return(0, nil)
		}

		_, err := svc.AutoAssignReviewers(ctx, articleID)
		assert.ErrorIs(t, err, domain.ErrNoEligibleReviewers)
	})
}

func TestStartReview(t *testing.T) {
	ctx := context.Background()
	reviewID := "review-1"
	reviewerID := "reviewer-1"

	t.Run("flips a pending review to in_progress", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(&domain.Review{ID: reviewID, ReviewerID: reviewerID, Status: domain.ReviewStatusPending}, nil)
		reviewRepo.EXPECT().
			Start(mock.Anything, reviewID).
			Return(true, nil)

		review, err := svc.StartReview(ctx, reviewID, reviewerID)

		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusInProgress, review.Status)
	})

	t.Run("fails for reviews that are not startable", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			GetByID(mock.Anything, reviewID).
			Return(&domain.Review{ID: reviewID, ReviewerID: reviewerID, Status: domain.ReviewStatusCompleted}, nil)
		reviewRepo.EXPECT().
			Start(mock.Anything, reviewID).
			Return(false, nil)

		_, err := svc.StartReview(ctx, reviewID, reviewerID)
		assert.ErrorIs(t, err, domain.ErrReviewNotStartable)
	})
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	articleID := "55555555-5555-4555-8555-555555555555"

	t.Run("summarizes a partially completed panel", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionReject)), nil)

		progress, err := svc.Progress(ctx, articleID)

		require.NoError(t, err)
		assert.Equal(t, 4, progress.Total)
		assert.Equal(t, 2, progress.Completed)
		assert.Equal(t, 2, progress.Pending)
		assert.False(t, progress.AllComplete)
	})

	t.Run("reports completion for a full panel", func(t *testing.T) {
		svc, _, reviewRepo, _, _, _ := newReviewServiceWithMocks(t)

		reviewRepo.EXPECT().
			ListByArticle(mock.Anything, articleID).
			Return(completedPanel(articleID,
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept),
				decisionPtr(domain.DecisionAccept), decisionPtr(domain.DecisionAccept)), nil)

		progress, err := svc.Progress(ctx, articleID)

		require.NoError(t, err)
		assert.True(t, progress.AllComplete)
	})
}
