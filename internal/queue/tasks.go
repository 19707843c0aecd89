package queue

import (
	"encoding/json"

	"github.com/storehub/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreated 下单通知任务
	TaskOrderCreated = constants.TaskOrderCreated
)

// OrderCreatedPayload 下单通知任务载荷
type OrderCreatedPayload struct {
	OrderID    uint `json:"order_id"`
	CustomerID uint `json:"customer_id"`
}

// NewOrderCreatedTask 创建下单通知任务
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}
