package store

import (
	"errors"

	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartProduct 购物车内商品摘要
type CartProduct struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	UnitPrice models.Money `json:"unit_price"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ID         uint         `json:"id"`
	ProductID  uint         `json:"product_id"`
	Product    *CartProduct `json:"product,omitempty"`
	Quantity   int          `json:"quantity"`
	TotalPrice models.Money `json:"total_price"`
}

// CartResponse 购物车响应
type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice models.Money       `json:"total_price"`
}

func newCartItemResponse(item models.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		resp.Product = &CartProduct{
			ID:        item.Product.ID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.UnitPrice,
		}
		lineTotal := item.Product.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		resp.TotalPrice = models.NewMoneyFromDecimal(lineTotal)
	}
	return resp
}

func newCartResponse(cart models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	total := decimal.Zero
	for _, item := range cart.Items {
		itemResp := newCartItemResponse(item)
		total = total.Add(itemResp.TotalPrice.Decimal)
		items = append(items, itemResp)
	}
	return CartResponse{
		ID:         cart.ID,
		Items:      items,
		TotalPrice: models.NewMoneyFromDecimal(total),
	}
}

func cartIDParam(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		respondError(c, response.CodeNotFound, "cart not found", nil)
		return "", false
	}
	return raw, true
}

// CreateCart 创建匿名购物车
func (h *Handler) CreateCart(c *gin.Context) {
	cart, err := h.CartService.Create()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to create cart", err)
		return
	}
	response.Created(c, newCartResponse(*cart))
}

// GetCart 购物车详情（含项与总价）
func (h *Handler) GetCart(c *gin.Context) {
	id, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	cart, err := h.CartService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			respondError(c, response.CodeNotFound, "cart not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to fetch cart", err)
		}
		return
	}
	response.Success(c, newCartResponse(*cart))
}

// DeleteCart 删除购物车
func (h *Handler) DeleteCart(c *gin.Context) {
	id, ok := cartIDParam(c, "cart_id")
	if !ok {
		return
	}
	if err := h.CartService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			respondError(c, response.CodeNotFound, "cart not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to delete cart", err)
		}
		return
	}
	response.NoContent(c)
}
