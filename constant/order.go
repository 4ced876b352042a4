package constant

type OrderStatus int

const (
	OrderStatusDraft     OrderStatus = 0
	OrderStatusValidated OrderStatus = 1
	OrderStatusShipping  OrderStatus = 2
	OrderStatusClosed    OrderStatus = 3
	OrderStatusCanceled  OrderStatus = 4
)
