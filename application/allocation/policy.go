package allocation

// Policy is the per-request allocation configuration: deployment defaults
// merged with the caller's submission-level switches. It replaces what the
// legacy flow read from ambient global state.
type Policy struct {
	// ShipAll allocates the full remaining quantity of a line when no
	// explicit quantity was submitted for it.
	ShipAll bool
	// AllowNegativeStock permits allocations beyond the recorded available
	// quantity of a batch or warehouse.
	AllowNegativeStock bool
	// VirtualProductID is the catalog product substituted for
	// manufacturing-order-backed free-text lines.
	VirtualProductID uint64
	// MORefPrefix and FabricationMarker are the description tokens that mark
	// a free-text line as manufacturing-order-backed.
	MORefPrefix       string
	FabricationMarker string
	// DefaultWarehouseID is used for entries submitted without an explicit
	// warehouse. Zero means no default.
	DefaultWarehouseID uint64
}
