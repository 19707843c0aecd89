package store

import (
	"errors"
	"time"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

// UpdateOrderRequest 更新订单支付状态请求
type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// OrderItemResponse 订单项响应
type OrderItemResponse struct {
	ID         uint         `json:"id"`
	ProductID  uint         `json:"product_id"`
	Product    *CartProduct `json:"product,omitempty"`
	UnitPrice  models.Money `json:"unit_price"`
	Quantity   int          `json:"quantity"`
	TotalPrice models.Money `json:"total_price"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID            uint                `json:"id"`
	CustomerID    uint                `json:"customer_id"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus string              `json:"payment_status"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    models.Money        `json:"total_price"`
}

func newOrderResponse(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	total := decimal.Zero
	for _, item := range order.Items {
		lineTotal := item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		itemResp := OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
		}
		if item.Product != nil {
			itemResp.Product = &CartProduct{
				ID:        item.Product.ID,
				Title:     item.Product.Title,
				UnitPrice: item.Product.UnitPrice,
			}
		}
		items = append(items, itemResp)
	}
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		PlacedAt:      order.PlacedAt,
		PaymentStatus: order.PaymentStatus,
		Items:         items,
		TotalPrice:    models.NewMoneyFromDecimal(total),
	}
}

// Checkout 结算购物车生成订单
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.Checkout(req.CartID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			respondError(c, response.CodeBadRequest, "no cart with the given id was found", nil)
		case errors.Is(err, service.ErrCartEmpty):
			respondError(c, response.CodeBadRequest, "the cart is empty", nil)
		case errors.Is(err, service.ErrCustomerMissing):
			// 顾客档案缺失属于数据完整性问题，调用方无法自行恢复
			respondError(c, response.CodeInternal, "customer profile missing for the current user", err)
		default:
			respondError(c, response.CodeInternal, "failed to place order", err)
		}
		return
	}
	response.Created(c, newOrderResponse(*order))
}

// ListOrders 订单列表；员工可见全部，普通用户只见自己的
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c, h.paginationLimits())
	orders, total, err := h.OrderService.ListForUser(userID, handlershared.IsStaff(c), service.OrderListInput{
		Page:          page,
		PageSize:      pageSize,
		PaymentStatus: c.Query("payment_status"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid payment status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to list orders", err)
		}
		return
	}
	items := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, newOrderResponse(order))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.NewPagination(page, pageSize, total))
}

// GetOrder 订单详情（普通用户仅限本人订单）
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	order, err := h.OrderService.GetForUser(id, userID, handlershared.IsStaff(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to fetch order", err)
		}
		return
	}
	response.Success(c, newOrderResponse(*order))
}

// UpdateOrder 更新订单支付状态（管理操作）
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	order, err := h.OrderService.UpdatePaymentStatus(id, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrPaymentStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid payment status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order", err)
		}
		return
	}
	response.Success(c, newOrderResponse(*order))
}

// DeleteOrder 删除订单（管理操作）
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	if err := h.OrderService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to delete order", err)
		}
		return
	}
	response.NoContent(c)
}
