package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/middleware"
	"peer-review-workflow/internal/service"
	"peer-review-workflow/internal/validator"
)

// ReviewHandler handles reviewer-facing requests.
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
	validator     *validator.Validator
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewServiceInterface, v *validator.Validator) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: v}
}

// ListAssignments handles GET /api/v1/reviews
func (h *ReviewHandler) ListAssignments(c *gin.Context) {
	reviews, err := h.reviewService.ListAssignments(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Get handles GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Start handles PATCH /api/v1/reviews/:id/start
func (h *ReviewHandler) Start(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	review, err := h.reviewService.StartReview(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "review started",
		"review":  review,
	})
}

// SubmitDecision handles POST /api/v1/reviews/:id
func (h *ReviewHandler) SubmitDecision(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req validator.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateSubmitReview(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reviewService.SubmitDecision(c.Request.Context(), id, middleware.GetUserID(c),
		domain.ReviewDecision(req.Decision), req.CommentsToAuthor, req.CommentsToEditor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "review submitted successfully",
		"summary": summary,
	})
}
