package shipment

import (
	"fmt"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// builder tracks the lifecycle of one shipment-creation request:
// Collecting -> Validating -> Persisting -> Committed | RolledBack.
// Committed and RolledBack are terminal.
type builder struct {
	state constant.BuilderState
}

var builderTransitions = map[constant.BuilderState]map[constant.BuilderState]bool{
	constant.BuilderCollecting: {
		constant.BuilderValidating: true,
		constant.BuilderRolledBack: true,
	},
	constant.BuilderValidating: {
		constant.BuilderPersisting: true,
		constant.BuilderRolledBack: true,
	},
	constant.BuilderPersisting: {
		constant.BuilderCommitted:  true,
		constant.BuilderRolledBack: true,
	},
}

func newBuilder() *builder {
	return &builder{state: constant.BuilderCollecting}
}

func (b *builder) advance(next constant.BuilderState) error {
	if !builderTransitions[b.state][next] {
		return fmt.Errorf("illegal shipment builder transition %s -> %s", b.state, next)
	}
	logger.Debug("[ShipmentBuilder] transition", zap.String("from", b.state.String()), zap.String("to", next.String()))
	b.state = next
	return nil
}

func (b *builder) rollback() {
	if b.state == constant.BuilderCommitted || b.state == constant.BuilderRolledBack {
		return
	}
	_ = b.advance(constant.BuilderRolledBack)
}
