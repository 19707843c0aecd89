package worker

import (
	"context"
	"encoding/json"

	"github.com/storehub/internal/logger"
	"github.com/storehub/internal/provider"
	"github.com/storehub/internal/queue"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
}

// handleOrderCreated 下单通知：读取订单快照并输出确认日志
func (c *Consumer) handleOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_created_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	logger.Infow("order_created_notification",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"payment_status", order.PaymentStatus,
		"item_count", len(order.Items),
		"total", total.StringFixed(2),
	)
	return nil
}
