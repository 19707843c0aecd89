package store

import (
	"errors"
	"strings"
	"time"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	UnitPrice    models.Money `json:"unit_price" binding:"required"`
	Inventory    int          `json:"inventory"`
	CollectionID uint         `json:"collection_id" binding:"required"`
}

// ProductPatchRequest 商品局部更新请求，缺省字段保持原值
type ProductPatchRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	UnitPrice    *models.Money `json:"unit_price"`
	Inventory    *int          `json:"inventory"`
	CollectionID *uint         `json:"collection_id"`
}

// ProductResponse 商品响应
type ProductResponse struct {
	ID           uint               `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Description  string             `json:"description"`
	UnitPrice    models.Money       `json:"unit_price"`
	PriceWithTax models.Money       `json:"price_with_tax"`
	Inventory    int                `json:"inventory"`
	CollectionID uint               `json:"collection_id"`
	Collection   *ProductCollection `json:"collection,omitempty"`
	LastUpdate   time.Time          `json:"last_update"`
}

// ProductCollection 商品所属集合摘要
type ProductCollection struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func (h *Handler) newProductResponse(product models.Product) ProductResponse {
	resp := ProductResponse{
		ID:           product.ID,
		Title:        product.Title,
		Slug:         product.Slug,
		Description:  product.Description,
		UnitPrice:    product.UnitPrice,
		PriceWithTax: h.ProductService.PriceWithTax(product.UnitPrice),
		Inventory:    product.Inventory,
		CollectionID: product.CollectionID,
		LastUpdate:   product.LastUpdate,
	}
	if product.Collection != nil {
		resp.Collection = &ProductCollection{
			ID:    product.Collection.ID,
			Title: product.Collection.Title,
		}
	}
	return resp
}

// ListProducts 商品列表（过滤 + 搜索 + 排序 + 分页）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c, h.paginationLimits())

	input := service.ProductListInput{
		Page:         page,
		PageSize:     pageSize,
		CollectionID: strings.TrimSpace(c.Query("collection_id")),
		Search:       c.Query("search"),
		OrderBy:      c.Query("order_by"),
	}
	if raw := strings.TrimSpace(c.Query("price_min")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid price_min", nil)
			return
		}
		input.PriceMin = &value
	}
	if raw := strings.TrimSpace(c.Query("price_max")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid price_max", nil)
			return
		}
		input.PriceMax = &value
	}

	products, total, err := h.ProductService.List(input)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}
	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, h.newProductResponse(product))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "product_id")
	if !ok {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to fetch product", err)
		}
		return
	}
	response.Success(c, h.newProductResponse(*product))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Create(service.ProductInput{
		Title:        req.Title,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice.Decimal,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		h.respondProductWriteError(c, err)
		return
	}
	response.Created(c, h.newProductResponse(*product))
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "product_id")
	if !ok {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Update(id, service.ProductInput{
		Title:        req.Title,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice.Decimal,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		h.respondProductWriteError(c, err)
		return
	}
	response.Success(c, h.newProductResponse(*product))
}

// PatchProduct 局部更新商品，仅覆盖请求体中出现的字段
func (h *Handler) PatchProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "product_id")
	if !ok {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}
	var req ProductPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	patch := service.ProductPatch{
		Title:        req.Title,
		Description:  req.Description,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
	}
	if req.UnitPrice != nil {
		patch.UnitPrice = &req.UnitPrice.Decimal
	}
	product, err := h.ProductService.Patch(id, patch)
	if err != nil {
		h.respondProductWriteError(c, err)
		return
	}
	response.Success(c, h.newProductResponse(*product))
}

// DeleteProduct 删除商品；被订单项引用时返回 405
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "product_id")
	if !ok {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrProductInUse):
			respondError(c, response.CodeMethodNotAllowed, "product cannot be deleted because it is associated with an order item", nil)
		default:
			respondError(c, response.CodeInternal, "failed to delete product", err)
		}
		return
	}
	response.NoContent(c)
}

func (h *Handler) respondProductWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrTitleRequired):
		respondError(c, response.CodeBadRequest, "title is required", nil)
	case errors.Is(err, service.ErrPriceInvalid):
		respondError(c, response.CodeBadRequest, "unit price must be positive", nil)
	case errors.Is(err, service.ErrInventoryInvalid):
		respondError(c, response.CodeBadRequest, "inventory must not be negative", nil)
	case errors.Is(err, service.ErrCollectionIDRequired):
		respondError(c, response.CodeBadRequest, "collection id is required", nil)
	case errors.Is(err, service.ErrCollectionNotFound):
		respondError(c, response.CodeBadRequest, "collection does not exist", nil)
	default:
		respondError(c, response.CodeInternal, "failed to save product", err)
	}
}
