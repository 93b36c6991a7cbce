package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"peer-review-workflow/internal/dispatch"
	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/logger"
	"peer-review-workflow/internal/metrics"
	"peer-review-workflow/internal/repository"
)

const (
	// DefaultReviewDueInDays is the default review deadline offset.
	DefaultReviewDueInDays = 21

	// MaxActiveReviewsPerReviewer caps a reviewer's open workload during
	// auto-assignment.
	MaxActiveReviewsPerReviewer = 5

	// workloadWeight is the per-free-slot bonus in auto-assignment scoring,
	// biasing selection toward less-loaded reviewers.
	workloadWeight = 0.5
)

// ReviewService implements the review assignment, submission, and status
// aggregation workflow.
type ReviewService struct {
	articleRepo      repository.ArticleRepository
	reviewRepo       repository.ReviewRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	mailer           dispatch.Mailer

	dueInDays int
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	articleRepo repository.ArticleRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	mailer dispatch.Mailer,
	dueInDays int,
) *ReviewService {
	if dueInDays < 1 {
		dueInDays = DefaultReviewDueInDays
	}
	return &ReviewService{
		articleRepo:      articleRepo,
		reviewRepo:       reviewRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		dueInDays:        dueInDays,
	}
}

// AssignReviewers creates the full reviewer panel for an article, slots
// 1..4 in the order given, all with the same due date, and flips the
// article to under_review. All-or-nothing: on any validation failure no
// review rows are created.
func (s *ReviewService) AssignReviewers(ctx context.Context, articleID string, reviewerIDs []string, dueInDays int) ([]domain.Review, error) {
	if len(reviewerIDs) != domain.ReviewerCount {
		return nil, domain.ErrReviewerCount
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}

	existing, err := s.reviewRepo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("count existing reviews: %w", err)
	}
	if existing > 0 {
		return nil, domain.ErrReviewersAlreadyAssigned
	}

	reviewers, err := s.userRepo.ListReviewers(ctx, reviewerIDs)
	if err != nil {
		return nil, fmt.Errorf("load reviewers: %w", err)
	}
	// Duplicate ids collapse in the lookup, so this also rejects panels
	// with repeated reviewers.
	if len(reviewers) != domain.ReviewerCount {
		return nil, domain.ErrReviewerRole
	}

	if dueInDays < 1 {
		dueInDays = s.dueInDays
	}
	now := time.Now()
	dueDate := now.AddDate(0, 0, dueInDays)

	reviews := make([]domain.Review, 0, domain.ReviewerCount)
	for i, reviewerID := range reviewerIDs {
		reviews = append(reviews, domain.Review{
			ID:             uuid.New().String(),
			ArticleID:      articleID,
			ReviewerID:     reviewerID,
			ReviewerNumber: i + 1,
			Status:         domain.ReviewStatusPending,
			DueDate:        dueDate,
			CreatedAt:      now,
		})
	}

	if err := s.reviewRepo.CreateBatch(ctx, reviews); err != nil {
		return nil, fmt.Errorf("create reviews: %w", err)
	}

	metrics.ObserveStatusTransition("assignment", string(article.Status), string(domain.ArticleStatusUnderReview))
	logger.WithArticleID(articleID).Info("reviewer panel assigned",
		"reviewers", len(reviews), "due_date", dueDate)

	return reviews, nil
}

// AutoAssignReviewers builds a reviewer panel automatically: it filters out
// the author, same-university reviewers, overloaded reviewers, and anyone
// already assigned, scores the rest by keyword match against their bio plus
// a workload bonus, and assigns the top four.
func (s *ReviewService) AutoAssignReviewers(ctx context.Context, articleID string) ([]domain.Review, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}

	author, err := s.userRepo.GetByID(ctx, article.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	assigned, err := s.reviewRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load existing reviews: %w", err)
	}
	assignedIDs := make(map[string]bool, len(assigned))
	for _, rev := range assigned {
		assignedIDs[rev.ReviewerID] = true
	}

	candidates, err := s.userRepo.ListActiveReviewers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviewers: %w", err)
	}

	type scored struct {
		reviewer domain.User
		score    float64
	}
	var eligible []scored

	for _, reviewer := range candidates {
		if reviewer.ID == article.AuthorID || assignedIDs[reviewer.ID] {
			continue
		}
		// Conflict of interest: same university as the author
		if author != nil && sameUniversity(reviewer.University, author.University) {
			continue
		}

		workload, err := s.reviewRepo.CountActiveByReviewer(ctx, reviewer.ID)
		if err != nil {
			return nil, fmt.Errorf("count reviewer workload: %w", err)
		}
		if workload >= MaxActiveReviewsPerReviewer {
			continue
		}

		score := keywordScore(article.Keywords, reviewer.Bio)
		score += float64(MaxActiveReviewsPerReviewer-workload) * workloadWeight

		eligible = append(eligible, scored{reviewer: reviewer, score: score})
	}

	if len(eligible) < domain.ReviewerCount {
		return nil, domain.ErrNoEligibleReviewers
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	panel := make([]string, domain.ReviewerCount)
	for i := 0; i < domain.ReviewerCount; i++ {
		panel[i] = eligible[i].reviewer.ID
	}

	return s.AssignReviewers(ctx, articleID, panel, 0)
}

// ListAssignments returns a reviewer's open assignments ordered by due date.
func (s *ReviewService) ListAssignments(ctx context.Context, reviewerID string) ([]domain.Review, error) {
	return s.reviewRepo.ListByReviewer(ctx, reviewerID,
		[]domain.ReviewStatus{domain.ReviewStatusPending, domain.ReviewStatusInProgress})
}

// GetReview returns a single review if it belongs to the reviewer.
func (s *ReviewService) GetReview(ctx context.Context, reviewID, reviewerID string) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != reviewerID {
		return nil, domain.ErrReviewNotFound
	}
	return review, nil
}

// StartReview flips a pending review to in_progress.
func (s *ReviewService) StartReview(ctx context.Context, reviewID, reviewerID string) (*domain.Review, error) {
	review, err := s.GetReview(ctx, reviewID, reviewerID)
	if err != nil {
		return nil, err
	}

	started, err := s.reviewRepo.Start(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("start review: %w", err)
	}
	if !started {
		return nil, domain.ErrReviewNotStartable
	}

	review.Status = domain.ReviewStatusInProgress
	return review, nil
}

// SubmitDecision records one reviewer's verdict. The review must belong to
// the reviewer and must not already be completed; a completed review's
// decision and comments are immutable. On success the status aggregation
// runs for the parent article - this is the single entry point that can
// advance article status from the reviewer side.
func (s *ReviewService) SubmitDecision(ctx context.Context, reviewID, reviewerID string, decision domain.ReviewDecision, commentsToAuthor string, commentsToEditor *string) (*domain.AggregationSummary, error) {
	review, err := s.GetReview(ctx, reviewID, reviewerID)
	if err != nil {
		return nil, err
	}
	if review.Status == domain.ReviewStatusCompleted {
		return nil, domain.ErrReviewAlreadySubmitted
	}

	completed, err := s.reviewRepo.Complete(ctx, reviewID, decision, commentsToAuthor, commentsToEditor)
	if err != nil {
		return nil, fmt.Errorf("complete review: %w", err)
	}
	// A concurrent submission may have completed the review between the
	// read and the guarded update.
	if !completed {
		return nil, domain.ErrReviewAlreadySubmitted
	}

	metrics.ReviewDecisionsTotal.WithLabelValues(string(decision)).Inc()
	logger.WithArticleID(review.ArticleID).Info("review submitted",
		"review_id", reviewID, "reviewer_number", review.ReviewerNumber, "decision", decision)

	return s.aggregate(ctx, review.ArticleID)
}

// Progress summarizes review completion for an article.
func (s *ReviewService) Progress(ctx context.Context, articleID string) (*domain.ReviewProgress, error) {
	reviews, err := s.reviewRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	progress := &domain.ReviewProgress{
		Reviews: reviews,
		Total:   len(reviews),
	}
	for _, rev := range reviews {
		switch rev.Status {
		case domain.ReviewStatusCompleted:
			progress.Completed++
		case domain.ReviewStatusPending, domain.ReviewStatusInProgress:
			progress.Pending++
		}
	}
	progress.AllComplete = progress.Total > 0 && progress.Completed == progress.Total

	return progress, nil
}

// aggregate inspects all reviews for the article and computes its next
// status. The quorum rules apply only to the canonical fully-completed
// four-reviewer panel, in precedence order:
//
//  1. four accepts publish the article outright
//  2. two or more rejects reject it
//  3. any revision request asks for revisions
//  4. an accept-leaning split (two-plus accepts, no rejects) asks for
//     minor revisions
//
// A partially completed panel moves a submitted article to under_review
// once. The article update is a compare-and-swap keyed on the status read
// here, so a racing aggregation pass transitions at most once and side
// effects dispatch exactly once per transition.
func (s *ReviewService) aggregate(ctx context.Context, articleID string) (*domain.AggregationSummary, error) {
	reviews, err := s.reviewRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}

	summary := &domain.AggregationSummary{
		NewStatus:    article.Status,
		TotalReviews: len(reviews),
	}
	for _, rev := range reviews {
		if rev.Status != domain.ReviewStatusCompleted {
			continue
		}
		summary.CompletedCount++
		if rev.Decision == nil {
			continue
		}
		switch *rev.Decision {
		case domain.DecisionAccept:
			summary.Accepted++
		case domain.DecisionReject:
			summary.Rejected++
		case domain.DecisionRevisionRequested:
			summary.RevisionRequested++
		}
	}

	change := domain.StatusChange{Status: article.Status}
	var message string

	switch {
	case summary.TotalReviews == domain.ReviewerCount && summary.CompletedCount == domain.ReviewerCount:
		switch {
		case summary.Accepted == domain.ReviewerCount:
			now := time.Now()
			doi, volume, issue := BuildDOI(now, articleID)
			change.Status = domain.ArticleStatusPublished
			change.PublicationDate = &now
			change.DOI = &doi
			change.Volume = &volume
			change.Issue = &issue
			message = "All reviewers accepted, your article has been auto-published."
		case summary.Rejected >= 2:
			change.Status = domain.ArticleStatusRejected
			message = "Your article was rejected after peer review. You may revise and resubmit elsewhere."
		case summary.RevisionRequested > 0:
			change.Status = domain.ArticleStatusRevisionRequested
			message = "Reviewers have requested revisions to your article."
		case summary.Accepted >= 2 && summary.Rejected == 0:
			change.Status = domain.ArticleStatusRevisionRequested
			message = "Your article shows promise, but minor revisions are required."
		default:
			// No rule covers this combination; leave the status alone.
			logger.WithArticleID(articleID).Warn("review combination has no transition rule",
				"accepted", summary.Accepted, "rejected", summary.Rejected,
				"revision_requested", summary.RevisionRequested)
		}
	case summary.CompletedCount > 0 && article.Status == domain.ArticleStatusSubmitted:
		// Fires at most once per article: after the first swap the status is
		// no longer submitted.
		change.Status = domain.ArticleStatusUnderReview
		message = fmt.Sprintf("%d of %d reviewers completed their review.",
			summary.CompletedCount, domain.ReviewerCount)
	}

	if change.Status == article.Status || message == "" {
		return summary, nil
	}

	swapped, err := s.articleRepo.TransitionStatus(ctx, articleID, article.Status, change)
	if err != nil {
		return nil, fmt.Errorf("transition article status: %w", err)
	}
	if !swapped {
		// Lost the race to a concurrent aggregation pass; the winner
		// dispatched the side effects.
		logger.WithArticleID(articleID).Info("aggregation transition already applied",
			"target_status", change.Status)
		return summary, nil
	}

	summary.NewStatus = change.Status
	metrics.ObserveStatusTransition("aggregation", string(article.Status), string(change.Status))
	logger.WithArticleID(articleID).Info("article status aggregated",
		"old_status", article.Status, "new_status", change.Status,
		"completed", summary.CompletedCount, "accepted", summary.Accepted,
		"rejected", summary.Rejected, "revision_requested", summary.RevisionRequested)

	s.notifyAuthor(ctx, article, change.Status, message)
	s.emailAuthor(ctx, article, change.Status, message, change.DOI)

	return summary, nil
}

// notifyAuthor records the in-app notification for a status change.
// Best-effort, like the email.
func (s *ReviewService) notifyAuthor(ctx context.Context, article *domain.Article, newStatus domain.ArticleStatus, message string) {
	title, notificationType := notificationForStatus(newStatus)
	err := s.notificationRepo.Create(ctx, &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    article.AuthorID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Link:      fmt.Sprintf("/articles/%s", article.ID),
		CreatedAt: time.Now(),
	})
	if err != nil {
		metrics.ObserveSideEffectFailure("notification")
		logger.WithArticleID(article.ID).Error("notification failed", "error", err)
	}
}

func notificationForStatus(status domain.ArticleStatus) (string, domain.NotificationType) {
	switch status {
	case domain.ArticleStatusPublished:
		return "Article Published", domain.NotificationSuccess
	case domain.ArticleStatusRejected:
		return "Article Rejected", domain.NotificationError
	case domain.ArticleStatusRevisionRequested:
		return "Revisions Requested", domain.NotificationWarning
	default:
		return "Review Progress", domain.NotificationInfo
	}
}

// emailAuthor sends the status-change email to the article's author.
// Best-effort: failures are logged and counted, never propagated.
func (s *ReviewService) emailAuthor(ctx context.Context, article *domain.Article, newStatus domain.ArticleStatus, message string, doi *string) {
	author, err := s.userRepo.GetByID(ctx, article.AuthorID)
	if err != nil || author == nil {
		metrics.ObserveSideEffectFailure("email")
		logger.WithArticleID(article.ID).Error("load author for status email failed", "error", err)
		return
	}

	err = s.mailer.SendStatusUpdate(ctx, dispatch.StatusUpdate{
		To:           author.Email,
		Name:         author.Name,
		ArticleTitle: article.Title,
		ArticleID:    article.ID,
		OldStatus:    string(article.Status),
		NewStatus:    string(newStatus),
		Message:      message,
		DOI:          doi,
	})
	if err != nil {
		metrics.ObserveSideEffectFailure("email")
		logger.WithArticleID(article.ID).Error("status email failed", "error", err)
	}
}

func sameUniversity(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return a != "" && a == b
}

func keywordScore(keywords []string, bio string) float64 {
	if bio == "" {
		return 0
	}
	bio = strings.ToLower(bio)
	var score float64
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(bio, strings.ToLower(keyword)) {
			score++
		}
	}
	return score
}
