package store

import (
	"errors"
	"time"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewRequest 评价创建/更新请求
type ReviewRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ReviewPatchRequest 评价局部更新请求，缺省字段保持原值
type ReviewPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ReviewResponse 评价响应
type ReviewResponse struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID,
		ProductID:   review.ProductID,
		Name:        review.Name,
		Description: review.Description,
		Date:        review.Date,
	}
}

func reviewProductID(c *gin.Context) (uint, bool) {
	productID, ok := handlershared.ParseUintParam(c, "product_id")
	if !ok {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return 0, false
	}
	return productID, true
}

// ListReviews 某商品的评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c, h.paginationLimits())
	reviews, total, err := h.ReviewService.List(productID, page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to list reviews", err)
		}
		return
	}
	items := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, newReviewResponse(review))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.NewPagination(page, pageSize, total))
}

// GetReview 评价详情
func (h *Handler) GetReview(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}
	review, err := h.ReviewService.Get(productID, id)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	response.Success(c, newReviewResponse(*review))
}

// CreateReview 创建评价（商品取自路径）
func (h *Handler) CreateReview(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	review, err := h.ReviewService.Create(productID, service.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	response.Created(c, newReviewResponse(*review))
}

// UpdateReview 更新评价
func (h *Handler) UpdateReview(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	review, err := h.ReviewService.Update(productID, id, service.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	response.Success(c, newReviewResponse(*review))
}

// PatchReview 局部更新评价，仅覆盖请求体中出现的字段
func (h *Handler) PatchReview(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}
	var req ReviewPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	review, err := h.ReviewService.Patch(productID, id, service.ReviewPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}
	response.Success(c, newReviewResponse(*review))
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	productID, ok := reviewProductID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}
	if err := h.ReviewService.Delete(productID, id); err != nil {
		h.respondReviewError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrReviewNotFound):
		respondError(c, response.CodeNotFound, "review not found", nil)
	case errors.Is(err, service.ErrNameRequired):
		respondError(c, response.CodeBadRequest, "name is required", nil)
	default:
		respondError(c, response.CodeInternal, "failed to process review", err)
	}
}
