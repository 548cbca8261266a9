package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	reviewapp "github.com/shopline/backend/internal/application/review"
)

// MsgReviewDeleted is returned after a review is removed
const MsgReviewDeleted = "Review deleted successfully!"

// ReviewService is the review use-case surface the handler needs
type ReviewService interface {
	Add(ctx context.Context, req reviewapp.AddReviewRequest) (*reviewapp.ReviewResponse, error)
	Update(ctx context.Context, id uuid.UUID, req reviewapp.UpdateReviewRequest) (*reviewapp.ReviewResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	BaseHandler
	reviewService ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Add handles POST /reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	var req reviewapp.AddReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// Update handles PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req reviewapp.UpdateReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, http.StatusOK, nil, MsgReviewDeleted)
}
