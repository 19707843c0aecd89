package store

import (
	"errors"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车项请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 更新购物车项数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ListCartItems 购物车项列表
func (h *Handler) ListCartItems(c *gin.Context) {
	cartID, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	items, err := h.CartService.ListItems(cartID)
	if err != nil {
		h.respondCartItemError(c, err)
		return
	}
	resp := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newCartItemResponse(item))
	}
	response.Success(c, gin.H{"items": resp})
}

// GetCartItem 购物车项详情
func (h *Handler) GetCartItem(c *gin.Context) {
	cartID, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	itemID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "cart item not found", nil)
		return
	}
	item, err := h.CartService.GetItem(cartID, itemID)
	if err != nil {
		h.respondCartItemError(c, err)
		return
	}
	response.Success(c, newCartItemResponse(*item))
}

// AddCartItem 添加购物车项；同商品已存在时合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	cartID, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	item, err := h.CartService.AddItem(cartID, service.CartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartItemError(c, err)
		return
	}
	response.Created(c, newCartItemResponse(*item))
}

// UpdateCartItem 覆写购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	cartID, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	itemID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "cart item not found", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	item, err := h.CartService.UpdateItemQuantity(cartID, itemID, req.Quantity)
	if err != nil {
		h.respondCartItemError(c, err)
		return
	}
	response.Success(c, newCartItemResponse(*item))
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	cartID, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	itemID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "cart item not found", nil)
		return
	}
	if err := h.CartService.RemoveItem(cartID, itemID); err != nil {
		h.respondCartItemError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) respondCartItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		respondError(c, response.CodeNotFound, "cart not found", nil)
	case errors.Is(err, service.ErrCartItemNotFound):
		respondError(c, response.CodeNotFound, "cart item not found", nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeBadRequest, "no product with the given id was found", nil)
	case errors.Is(err, service.ErrQuantityInvalid):
		respondError(c, response.CodeBadRequest, "quantity must be positive", nil)
	default:
		respondError(c, response.CodeInternal, "failed to process cart item", err)
	}
}
