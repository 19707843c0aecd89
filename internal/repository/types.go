package repository

import "github.com/shopspring/decimal"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page           int
	PageSize       int
	CollectionID   string
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	Search         string
	OrderBy        string // unit_price / last_update，前缀 "-" 表示降序
	WithCollection bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	CustomerID    uint // 0 表示不限定顾客
	PaymentStatus string
}

// CustomerListFilter 查询顾客列表的过滤条件
type CustomerListFilter struct {
	Page       int
	PageSize   int
	Membership string
}
