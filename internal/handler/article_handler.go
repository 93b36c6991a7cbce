package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"peer-review-workflow/internal/middleware"
	"peer-review-workflow/internal/service"
	"peer-review-workflow/internal/validator"
)

// ArticleHandler handles article submission and editorial requests.
type ArticleHandler struct {
	articleService  service.ArticleServiceInterface
	reviewService   service.ReviewServiceInterface
	decisionService service.DecisionServiceInterface
	validator       *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articleService service.ArticleServiceInterface,
	reviewService service.ReviewServiceInterface,
	decisionService service.DecisionServiceInterface,
	v *validator.Validator,
) *ArticleHandler {
	return &ArticleHandler{
		articleService:  articleService,
		reviewService:   reviewService,
		decisionService: decisionService,
		validator:       v,
	}
}

// Submit handles POST /api/v1/articles
func (h *ArticleHandler) Submit(c *gin.Context) {
	var req validator.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Submit(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if _, ok := err.(validation.Errors); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// AssignReviewers handles POST /api/v1/articles/:id/reviewers
func (h *ArticleHandler) AssignReviewers(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req validator.AssignReviewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateAssignReviewers(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviews, err := h.reviewService.AssignReviewers(c.Request.Context(), id, req.ReviewerIDs, req.DueInDays)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "reviewers assigned successfully",
		"reviews": reviews,
	})
}

// AutoAssignReviewers handles POST /api/v1/articles/:id/reviewers/auto
func (h *ArticleHandler) AutoAssignReviewers(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	reviews, err := h.reviewService.AutoAssignReviewers(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "reviewers assigned successfully",
		"reviews": reviews,
	})
}

// Progress handles GET /api/v1/articles/:id/reviews
func (h *ArticleHandler) Progress(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	progress, err := h.reviewService.Progress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// Decide handles POST /api/v1/articles/:id/decision
func (h *ArticleHandler) Decide(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req validator.EditorialDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateEditorialDecision(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := service.Actor{ID: middleware.GetUserID(c), Role: middleware.GetUserRole(c)}
	article, err := h.decisionService.Decide(c.Request.Context(), id,
		service.EditorialDecision(req.Decision), req.Comments, actor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "decision applied",
		"article": article,
	})
}
