package shipment

import (
	"testing"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/stretchr/testify/assert"
)

func TestBuilderHappyPath(t *testing.T) {
	b := newBuilder()
	assert.Equal(t, constant.BuilderCollecting, b.state)
	assert.NoError(t, b.advance(constant.BuilderValidating))
	assert.NoError(t, b.advance(constant.BuilderPersisting))
	assert.NoError(t, b.advance(constant.BuilderCommitted))
}

func TestBuilderIllegalTransitions(t *testing.T) {
	b := newBuilder()
	assert.Error(t, b.advance(constant.BuilderPersisting), "collecting cannot skip validation")
	assert.Error(t, b.advance(constant.BuilderCommitted), "collecting cannot commit")

	assert.NoError(t, b.advance(constant.BuilderValidating))
	assert.Error(t, b.advance(constant.BuilderCommitted), "validating cannot commit before persisting")
}

func TestBuilderRollback(t *testing.T) {
	b := newBuilder()
	assert.NoError(t, b.advance(constant.BuilderValidating))
	b.rollback()
	assert.Equal(t, constant.BuilderRolledBack, b.state)

	// Terminal states absorb further rollbacks.
	b.rollback()
	assert.Equal(t, constant.BuilderRolledBack, b.state)

	assert.Error(t, b.advance(constant.BuilderValidating), "rolled back is terminal")
}

func TestBuilderRollbackAfterCommitIsNoop(t *testing.T) {
	b := newBuilder()
	assert.NoError(t, b.advance(constant.BuilderValidating))
	assert.NoError(t, b.advance(constant.BuilderPersisting))
	assert.NoError(t, b.advance(constant.BuilderCommitted))
	b.rollback()
	assert.Equal(t, constant.BuilderCommitted, b.state)
}
