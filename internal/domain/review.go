package domain

import "time"

// ReviewStatus represents the state of a single review assignment.
type ReviewStatus string

const (
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusCompleted  ReviewStatus = "completed"
	ReviewStatusDeclined   ReviewStatus = "declined"
)

// ReviewDecision represents a reviewer's verdict on an article.
type ReviewDecision string

const (
	DecisionAccept            ReviewDecision = "accept"
	DecisionReject            ReviewDecision = "reject"
	DecisionRevisionRequested ReviewDecision = "revision_requested"
)

// ValidReviewStatuses contains all valid review statuses.
var ValidReviewStatuses = []ReviewStatus{
	ReviewStatusPending,
	ReviewStatusInProgress,
	ReviewStatusCompleted,
	ReviewStatusDeclined,
}

// ValidReviewDecisions contains all valid review decisions.
var ValidReviewDecisions = []ReviewDecision{
	DecisionAccept,
	DecisionReject,
	DecisionRevisionRequested,
}

// IsValidReviewStatus checks if a review status is valid.
func IsValidReviewStatus(status ReviewStatus) bool {
	for _, s := range ValidReviewStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidReviewDecision checks if a review decision is valid.
func IsValidReviewDecision(decision ReviewDecision) bool {
	for _, d := range ValidReviewDecisions {
		if d == decision {
			return true
		}
	}
	return false
}

// ReviewerCount is the fixed number of reviewers assigned per article.
// The aggregation quorum rules are defined against this panel size.
const ReviewerCount = 4

// Review represents one reviewer's assignment slot for an article.
// Exactly ReviewerCount reviews exist per article once assignment has run,
// with reviewer numbers 1..ReviewerCount unique within the article.
type Review struct {
	ID               string          `json:"id"`
	ArticleID        string          `json:"article_id"`
	ReviewerID       string          `json:"reviewer_id"`
	ReviewerNumber   int             `json:"reviewer_number"`
	Status           ReviewStatus    `json:"status"`
	Decision         *ReviewDecision `json:"decision,omitempty"`
	CommentsToAuthor *string         `json:"comments_to_author,omitempty"`
	CommentsToEditor *string         `json:"comments_to_editor,omitempty"`
	DueDate          time.Time       `json:"due_date"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AggregationSummary reports the outcome of one aggregation pass over an
// article's reviews. Callers use it for reporting, not for branching.
type AggregationSummary struct {
	NewStatus         ArticleStatus `json:"new_status"`
	TotalReviews      int           `json:"total_reviews"`
	CompletedCount    int           `json:"completed_count"`
	Accepted          int           `json:"accepted"`
	Rejected          int           `json:"rejected"`
	RevisionRequested int           `json:"revision_requested"`
}

// ReviewProgress summarizes review completion for an article, used by
// the editor dashboard.
type ReviewProgress struct {
	Reviews     []Review `json:"reviews"`
	Total       int      `json:"total"`
	Completed   int      `json:"completed"`
	Pending     int      `json:"pending"`
	AllComplete bool     `json:"all_complete"`
}
