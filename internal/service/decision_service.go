package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"peer-review-workflow/internal/dispatch"
	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/logger"
	"peer-review-workflow/internal/metrics"
	"peer-review-workflow/internal/repository"
)

// EditorialDecision is a manual editor verdict on an article.
type EditorialDecision string

const (
	EditorialAccept  EditorialDecision = "accept"
	EditorialPublish EditorialDecision = "publish"
	EditorialReject  EditorialDecision = "reject"
	EditorialRevise  EditorialDecision = "revise"
)

// IsValidEditorialDecision checks if an editorial decision is valid.
func IsValidEditorialDecision(d EditorialDecision) bool {
	switch d {
	case EditorialAccept, EditorialPublish, EditorialReject, EditorialRevise:
		return true
	}
	return false
}

// doiPrefix is the registrant prefix for generated DOIs.
const doiPrefix = "10.5555/c5k"

// BuildDOI derives the article's DOI, volume, and issue from calendar time
// and the article id prefix. Volume counts journal years since 2023 and the
// issue is the calendar month, which makes the scheme deterministic and
// collision-free without a registry-assigned sequence.
func BuildDOI(now time.Time, articleID string) (string, int, int) {
	year := now.Year()
	volume := year - 2023
	if volume < 1 {
		volume = 1
	}
	issue := int(now.Month())

	idPrefix := articleID
	if len(idPrefix) > 8 {
		idPrefix = idPrefix[:8]
	}

	return fmt.Sprintf("%s.%d.%d.%d.%s", doiPrefix, year, volume, issue, idPrefix), volume, issue
}

// DecisionService implements the manual editorial decision path, separate
// from the reviewer-driven aggregation.
type DecisionService struct {
	articleRepo      repository.ArticleRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	mailer           dispatch.Mailer
	doiRegistrar     dispatch.DOIRegistrar
	orcidClient      dispatch.OrcidClient

	// requireUnderReview gates decisions on the article having reached
	// under_review. Off preserves the permissive editor-override behavior
	// where any article can receive any decision.
	requireUnderReview bool
}

// NewDecisionService creates a new DecisionService.
func NewDecisionService(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	mailer dispatch.Mailer,
	doiRegistrar dispatch.DOIRegistrar,
	orcidClient dispatch.OrcidClient,
	requireUnderReview bool,
) *DecisionService {
	return &DecisionService{
		articleRepo:        articleRepo,
		userRepo:           userRepo,
		notificationRepo:   notificationRepo,
		mailer:             mailer,
		doiRegistrar:       doiRegistrar,
		orcidClient:        orcidClient,
		requireUnderReview: requireUnderReview,
	}
}

// Decide applies a manual editorial decision. Validation failures (role,
// payment gate) return before any state mutation. The status write is a
// compare-and-swap against the status read here; once it lands, email,
// notification, and the publish-time registry calls are dispatched
// best-effort and never roll it back.
func (s *DecisionService) Decide(ctx context.Context, articleID string, decision EditorialDecision, comments string, actor Actor) (*domain.Article, error) {
	if !actor.Role.CanDecide() {
		return nil, domain.ErrForbidden
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if s.requireUnderReview && article.Status != domain.ArticleStatusUnderReview {
		return nil, domain.ErrDecisionNotAllowed
	}

	now := time.Now()
	change := domain.StatusChange{}
	var message string
	var notificationType domain.NotificationType
	var notificationTitle string

	if comments != "" {
		change.EditorComments = &comments
	}

	switch decision {
	case EditorialAccept:
		change.Status = domain.ArticleStatusAccepted
		change.AcceptanceDate = &now
		message = fmt.Sprintf("Your article has been accepted for publication in %s.", article.JournalName)
		notificationType = domain.NotificationSuccess
		notificationTitle = "Article Accepted"

	case EditorialPublish:
		// Hard payment gate: publication requires the APC to be settled
		// before a DOI is issued. Only mother_admin may bypass it.
		if !article.IsAPCPaid && actor.Role != domain.RoleMotherAdmin {
			metrics.EditorialDecisionsTotal.WithLabelValues(string(decision), "apc_not_paid").Inc()
			return nil, domain.ErrAPCNotPaid
		}

		doi, volume, issue := BuildDOI(now, articleID)
		change.Status = domain.ArticleStatusPublished
		change.PublicationDate = &now
		change.AcceptanceDate = &now
		change.DOI = &doi
		change.Volume = &volume
		change.Issue = &issue
		message = fmt.Sprintf("Congratulations! Your article has been accepted for publication in %s.", article.JournalName)
		notificationType = domain.NotificationSuccess
		notificationTitle = "Article Published"

	case EditorialReject:
		change.Status = domain.ArticleStatusRejected
		if comments != "" {
			change.RejectionReason = &comments
		}
		message = "Your article has been declined for publication."
		notificationType = domain.NotificationError
		notificationTitle = "Article Rejected"

	case EditorialRevise:
		change.Status = domain.ArticleStatusRevisionRequested
		message = "Revisions have been requested for your article."
		notificationType = domain.NotificationWarning
		notificationTitle = "Revisions Requested"

	default:
		return nil, fmt.Errorf("invalid decision %q", decision)
	}

	swapped, err := s.articleRepo.TransitionStatus(ctx, articleID, article.Status, change)
	if err != nil {
		return nil, fmt.Errorf("transition article status: %w", err)
	}
	if !swapped {
		return nil, domain.ErrConcurrentUpdate
	}

	metrics.EditorialDecisionsTotal.WithLabelValues(string(decision), "applied").Inc()
	metrics.ObserveStatusTransition("editorial", string(article.Status), string(change.Status))
	logger.WithArticleID(articleID).Info("editorial decision applied",
		"decision", decision, "old_status", article.Status, "new_status", change.Status,
		"actor_role", actor.Role)

	author, err := s.userRepo.GetByID(ctx, article.AuthorID)
	if err != nil {
		logger.WithArticleID(articleID).Error("load author failed", "error", err)
	}

	// Publication is the source of truth; downstream registry sync is
	// eventually consistent. Each call is wrapped so one failure neither
	// blocks the other nor surfaces to the editor.
	if change.Status == domain.ArticleStatusPublished {
		if err := s.doiRegistrar.Register(ctx, dispatch.DOIDeposit{
			ArticleID:       articleID,
			DOI:             *change.DOI,
			Title:           article.Title,
			JournalName:     article.JournalName,
			AuthorName:      authorName(author),
			Volume:          *change.Volume,
			Issue:           *change.Issue,
			PublicationDate: now,
		}); err != nil {
			metrics.ObserveSideEffectFailure("doi")
			logger.WithArticleID(articleID).Error("DOI registration failed", "error", err)
		}

		if author != nil && author.HasLinkedOrcid() {
			if err := s.orcidClient.PushWork(ctx, *author.OrcidID, *author.OrcidAccessToken, dispatch.Work{
				Title:           article.Title,
				JournalName:     article.JournalName,
				DOI:             *change.DOI,
				PublicationDate: now,
				URL:             fmt.Sprintf("https://doi.org/%s", *change.DOI),
			}); err != nil {
				metrics.ObserveSideEffectFailure("orcid")
				logger.WithArticleID(articleID).Error("ORCID push failed", "error", err)
			}
		}
	}

	s.notifyAuthor(ctx, article, notificationTitle, message, notificationType)

	if author != nil {
		emailMessage := message
		if comments != "" {
			emailMessage = fmt.Sprintf("%s\n\nEditor Comments: %s", message, comments)
		}
		if err := s.mailer.SendStatusUpdate(ctx, dispatch.StatusUpdate{
			To:           author.Email,
			Name:         author.Name,
			ArticleTitle: article.Title,
			ArticleID:    articleID,
			OldStatus:    string(article.Status),
			NewStatus:    string(change.Status),
			Message:      emailMessage,
			DOI:          change.DOI,
		}); err != nil {
			metrics.ObserveSideEffectFailure("email")
			logger.WithArticleID(articleID).Error("status email failed", "error", err)
		}
	}

	return s.articleRepo.GetByID(ctx, articleID)
}

// notifyAuthor records an in-app notification for the author. Best-effort.
func (s *DecisionService) notifyAuthor(ctx context.Context, article *domain.Article, title, message string, notificationType domain.NotificationType) {
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

func authorName(author *domain.User) string {
	if author == nil {
		return ""
	}
	return author.Name
}
