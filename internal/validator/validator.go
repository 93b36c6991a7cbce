package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"peer-review-workflow/internal/domain"
)

var (
	validDecisions = []interface{}{
		string(domain.DecisionAccept),
		string(domain.DecisionReject),
		string(domain.DecisionRevisionRequested),
	}
	validEditorialDecisions = []interface{}{"accept", "publish", "reject", "revise"}
)

// MinAuthorCommentLength is the minimum length of comments to the author
// on a review submission.
const MinAuthorCommentLength = 50

// Validator provides validation methods for API requests.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// SubmitArticleRequest is the payload for an article submission.
type SubmitArticleRequest struct {
	Title       string   `json:"title"`
	Abstract    string   `json:"abstract"`
	Keywords    []string `json:"keywords"`
	JournalName string   `json:"journal_name"`
}

// ValidateSubmitArticle validates an article submission payload.
func (v *Validator) ValidateSubmitArticle(r *SubmitArticleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&r.Abstract,
			validation.Required.Error("abstract_required"),
		),
		validation.Field(&r.JournalName,
			validation.Required.Error("journal_name_required"),
		),
	)
}

// AssignReviewersRequest is the payload for reviewer assignment.
type AssignReviewersRequest struct {
	ReviewerIDs []string `json:"reviewer_ids"`
	DueInDays   int      `json:"due_in_days"`
}

// ValidateAssignReviewers validates a reviewer assignment payload.
// The exact panel-size rule lives in the service; here we only require
// well-formed ids.
func (v *Validator) ValidateAssignReviewers(r *AssignReviewersRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ReviewerIDs,
			validation.Required.Error("reviewer_ids_required"),
			validation.Each(is.UUIDv4.Error("invalid_reviewer_id")),
		),
		validation.Field(&r.DueInDays,
			validation.Min(0).Error("due_in_days_negative"),
		),
	)
}

// SubmitReviewRequest is the payload for a reviewer decision.
type SubmitReviewRequest struct {
	Decision         string  `json:"decision"`
	CommentsToAuthor string  `json:"comments_to_author"`
	CommentsToEditor *string `json:"comments_to_editor"`
}

// ValidateSubmitReview validates a review submission payload.
func (v *Validator) ValidateSubmitReview(r *SubmitReviewRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Decision,
			validation.Required.Error("decision_required"),
			validation.In(validDecisions...).Error("invalid_decision"),
		),
		validation.Field(&r.CommentsToAuthor,
			validation.Required.Error("comments_to_author_required"),
			validation.Length(MinAuthorCommentLength, 0).Error("comments_to_author_too_short"),
		),
	)
}

// EditorialDecisionRequest is the payload for an editorial decision.
type EditorialDecisionRequest struct {
	Decision string `json:"decision"`
	Comments string `json:"comments"`
}

// ValidateEditorialDecision validates an editorial decision payload.
func (v *Validator) ValidateEditorialDecision(r *EditorialDecisionRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Decision,
			validation.Required.Error("decision_required"),
			validation.In(validEditorialDecisions...).Error("invalid_decision"),
		),
	)
}
