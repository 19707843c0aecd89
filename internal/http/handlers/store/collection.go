package store

import (
	"errors"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
)

// CollectionRequest 集合创建/更新请求
type CollectionRequest struct {
	Title string `json:"title" binding:"required"`
}

// CollectionPatchRequest 集合局部更新请求，缺省字段保持原值
type CollectionPatchRequest struct {
	Title *string `json:"title"`
}

// CollectionResponse 集合响应
type CollectionResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	ProductsCount int64  `json:"products_count"`
}

func newCollectionResponse(collection models.Collection, productsCount int64) CollectionResponse {
	return CollectionResponse{
		ID:            collection.ID,
		Title:         collection.Title,
		ProductsCount: productsCount,
	}
}

// ListCollections 集合列表
func (h *Handler) ListCollections(c *gin.Context) {
	collections, err := h.CollectionService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list collections", err)
		return
	}
	items := make([]CollectionResponse, 0, len(collections))
	for _, item := range collections {
		items = append(items, newCollectionResponse(item.Collection, item.ProductsCount))
	}
	response.Success(c, gin.H{"items": items})
}

// GetCollection 集合详情
func (h *Handler) GetCollection(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "collection not found", nil)
		return
	}
	collection, err := h.CollectionService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to fetch collection", err)
		}
		return
	}
	response.Success(c, newCollectionResponse(collection.Collection, collection.ProductsCount))
}

// CreateCollection 创建集合
func (h *Handler) CreateCollection(c *gin.Context) {
	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	collection, err := h.CollectionService.Create(service.CollectionInput{Title: req.Title})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, response.CodeBadRequest, "title is required", nil)
		default:
			respondError(c, response.CodeInternal, "failed to create collection", err)
		}
		return
	}
	response.Created(c, newCollectionResponse(*collection, 0))
}

// UpdateCollection 更新集合
func (h *Handler) UpdateCollection(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "collection not found", nil)
		return
	}
	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	collection, err := h.CollectionService.Update(id, service.CollectionInput{Title: req.Title})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, response.CodeBadRequest, "title is required", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update collection", err)
		}
		return
	}
	count, err := h.CollectionRepo.CountProducts(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch collection", err)
		return
	}
	response.Success(c, newCollectionResponse(*collection, count))
}

// PatchCollection 局部更新集合，仅覆盖请求体中出现的字段
func (h *Handler) PatchCollection(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "collection not found", nil)
		return
	}
	var req CollectionPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	collection, err := h.CollectionService.Patch(id, service.CollectionPatch{Title: req.Title})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, response.CodeBadRequest, "title is required", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update collection", err)
		}
		return
	}
	count, err := h.CollectionRepo.CountProducts(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch collection", err)
		return
	}
	response.Success(c, newCollectionResponse(*collection, count))
}

// DeleteCollection 删除集合；仍有商品归属时返回 405
func (h *Handler) DeleteCollection(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "collection not found", nil)
		return
	}
	if err := h.CollectionService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		case errors.Is(err, service.ErrCollectionInUse):
			respondError(c, response.CodeMethodNotAllowed, "collection cannot be deleted because it includes one or more products", nil)
		default:
			respondError(c, response.CodeInternal, "failed to delete collection", err)
		}
		return
	}
	response.NoContent(c)
}
