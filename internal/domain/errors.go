package domain

import "errors"

// Validation errors returned synchronously to callers. No partial state
// mutation accompanies any of them.
var (
	// ErrReviewNotFound is returned when a review does not exist or does
	// not belong to the requesting reviewer. The two cases are deliberately
	// indistinguishable to the caller.
	ErrReviewNotFound = errors.New("review not found or access denied")

	// ErrReviewAlreadySubmitted is returned on a second submission attempt
	// for a completed review.
	ErrReviewAlreadySubmitted = errors.New("review already submitted")

	// ErrReviewerCount is returned when assignment is attempted with a
	// reviewer panel of the wrong size.
	ErrReviewerCount = errors.New("must assign exactly 4 reviewers")

	// ErrReviewerRole is returned when one or more assigned users do not
	// hold the reviewer role.
	ErrReviewerRole = errors.New("all assigned users must have reviewer role")

	// ErrReviewersAlreadyAssigned is returned when an article already has
	// its reviewer panel.
	ErrReviewersAlreadyAssigned = errors.New("reviewers already assigned to this article")

	// ErrAPCNotPaid gates the publish decision on payment of the article
	// processing charge.
	ErrAPCNotPaid = errors.New("article processing charge has not been paid")

	// ErrArticleNotFound is returned when an article id does not resolve.
	ErrArticleNotFound = errors.New("article not found")

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNoEligibleReviewers is returned when auto-assignment cannot build
	// a panel after conflict-of-interest and workload filtering.
	ErrNoEligibleReviewers = errors.New("no eligible reviewers found")

	// ErrDecisionNotAllowed is returned when decision policy requires the
	// article to be under review first.
	ErrDecisionNotAllowed = errors.New("article is not under review")

	// ErrReviewNotStartable is returned when a review cannot move to
	// in_progress from its current state.
	ErrReviewNotStartable = errors.New("review not found or already started")

	// ErrConcurrentUpdate is returned when the article changed between the
	// decision read and the status write.
	ErrConcurrentUpdate = errors.New("article was modified concurrently")
)
