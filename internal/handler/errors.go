package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/logger"
	"peer-review-workflow/internal/middleware"
)

// writeError maps workflow errors to HTTP responses. Validation failures
// surface as 4xx with their message; anything unrecognized is a 500 with
// the detail kept out of the response body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrReviewerCount),
		errors.Is(err, domain.ErrReviewerRole),
		errors.Is(err, domain.ErrReviewersAlreadyAssigned),
		errors.Is(err, domain.ErrNoEligibleReviewers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAPCNotPaid):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "APC_NOT_PAID"})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrDecisionNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrReviewNotStartable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReviewAlreadySubmitted),
		errors.Is(err, domain.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
