package domain

import "time"

// ArticleStatus represents the editorial status of an article.
type ArticleStatus string

const (
	ArticleStatusSubmitted         ArticleStatus = "submitted"
	ArticleStatusUnderReview       ArticleStatus = "under_review"
	ArticleStatusAccepted          ArticleStatus = "accepted"
	ArticleStatusPublished         ArticleStatus = "published"
	ArticleStatusRejected          ArticleStatus = "rejected"
	ArticleStatusRevisionRequested ArticleStatus = "revision_requested"
)

// ValidArticleStatuses contains all valid article statuses.
var ValidArticleStatuses = []ArticleStatus{
	ArticleStatusSubmitted,
	ArticleStatusUnderReview,
	ArticleStatusAccepted,
	ArticleStatusPublished,
	ArticleStatusRejected,
	ArticleStatusRevisionRequested,
}

// IsValidArticleStatus checks if an article status is valid.
func IsValidArticleStatus(status ArticleStatus) bool {
	for _, s := range ValidArticleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article represents a submitted manuscript moving through the editorial workflow.
type Article struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Abstract        string        `json:"abstract"`
	Keywords        []string      `json:"keywords,omitempty"`
	Status          ArticleStatus `json:"status"`
	JournalName     string        `json:"journal_name"`
	AuthorID        string        `json:"author_id"`
	SubmissionDate  time.Time     `json:"submission_date"`
	AcceptanceDate  *time.Time    `json:"acceptance_date,omitempty"`
	PublicationDate *time.Time    `json:"publication_date,omitempty"`
	DOI             *string       `json:"doi,omitempty"`
	Volume          *int          `json:"volume,omitempty"`
	Issue           *int          `json:"issue,omitempty"`
	EditorComments  *string       `json:"editor_comments,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	IsAPCPaid       bool          `json:"is_apc_paid"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// StatusChange carries the field updates applied together with an article
// status transition. Nil fields are left untouched by the store.
type StatusChange struct {
	Status          ArticleStatus
	AcceptanceDate  *time.Time
	PublicationDate *time.Time
	DOI             *string
	Volume          *int
	Issue           *int
	EditorComments  *string
	RejectionReason *string
}
