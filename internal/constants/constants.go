package constants

// 订单支付状态
const (
	PaymentStatusPending  = "P" // 待支付
	PaymentStatusComplete = "C" // 支付完成
	PaymentStatusFailed   = "F" // 支付失败
)

// PaymentStatuses 合法的支付状态集合
var PaymentStatuses = map[string]bool{
	PaymentStatusPending:  true,
	PaymentStatusComplete: true,
	PaymentStatusFailed:   true,
}

// 会员等级
const (
	MembershipBronze = "B" // 铜牌
	MembershipSilver = "S" // 银牌
	MembershipGold   = "G" // 金牌
)

// Memberships 合法的会员等级集合
var Memberships = map[string]bool{
	MembershipBronze: true,
	MembershipSilver: true,
	MembershipGold:   true,
}

// 商品列表排序字段
const (
	ProductOrderByUnitPrice  = "unit_price"
	ProductOrderByLastUpdate = "last_update"
)

// 队列与任务名称
const (
	QueueDefault     = "default"
	TaskOrderCreated = "order:created"
)
