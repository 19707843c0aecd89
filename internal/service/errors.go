package service

import "errors"

// 业务语义错误，处理器据此映射响应码
var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionInUse    = errors.New("collection has associated products")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInUse       = errors.New("product referenced by order items")
	ErrReviewNotFound     = errors.New("review not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerExists     = errors.New("customer already exists for user")
	ErrCustomerInUse      = errors.New("customer has associated orders")
	ErrCustomerMissing    = errors.New("no customer profile for current user")
	ErrOrderNotFound      = errors.New("order not found")

	ErrTitleRequired        = errors.New("title is required")
	ErrNameRequired         = errors.New("name is required")
	ErrPriceInvalid         = errors.New("unit price must be positive")
	ErrInventoryInvalid     = errors.New("inventory must not be negative")
	ErrQuantityInvalid      = errors.New("quantity must be positive")
	ErrPaymentStatusInvalid = errors.New("invalid payment status")
	ErrMembershipInvalid    = errors.New("invalid membership tier")
	ErrCollectionIDRequired = errors.New("collection id is required")
)
