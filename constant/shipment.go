package constant

// TrackingMode mirrors the product status_batch column: how physical stock of
// a product is identified in the warehouse.
type TrackingMode int

const (
	TrackingNone   TrackingMode = 0
	TrackingLot    TrackingMode = 1
	TrackingSerial TrackingMode = 2
)

type ShipmentStatus int

const (
	ShipmentStatusDraft     ShipmentStatus = 0
	ShipmentStatusValidated ShipmentStatus = 1
)

// BuilderState is the lifecycle of one shipment-creation request. A request
// walks Collecting -> Validating -> Persisting and terminates in Committed or
// RolledBack; there is no way back out of a terminal state.
type BuilderState int

const (
	BuilderCollecting BuilderState = iota
	BuilderValidating
	BuilderPersisting
	BuilderCommitted
	BuilderRolledBack
)

func (s BuilderState) String() string {
	switch s {
	case BuilderCollecting:
		return "collecting"
	case BuilderValidating:
		return "validating"
	case BuilderPersisting:
		return "persisting"
	case BuilderCommitted:
		return "committed"
	case BuilderRolledBack:
		return "rolled_back"
	}
	return "unknown"
}
