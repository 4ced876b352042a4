package constant

type WarehouseStatus int

const (
	WarehouseStatusInactive WarehouseStatus = 0
	WarehouseStatusActive   WarehouseStatus = 1
)
