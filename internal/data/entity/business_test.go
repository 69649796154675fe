package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultQueuePolicy(t *testing.T) {
	policy := DefaultQueuePolicy()

	assert.Equal(t, 50, policy.MaxQueueLength)
	assert.Equal(t, 10, policy.ReservedPrioritySlots)
	assert.Equal(t, 15, policy.PriorityExtensionTime)
	assert.True(t, policy.AutoWaitTimes)
}

func TestAdmit_UnderCapacity(t *testing.T) {
	policy := QueuePolicy{MaxQueueLength: 3, ReservedPrioritySlots: 1}

	assert.NoError(t, policy.Admit(2, 0, false))
	assert.NoError(t, policy.Admit(2, 0, true))
}

func TestAdmit_QueueFull(t *testing.T) {
	policy := QueuePolicy{MaxQueueLength: 3, ReservedPrioritySlots: 1}

	assert.ErrorIs(t, policy.Admit(3, 0, false), ErrQueueFull)
}

func TestAdmit_PrioritySlotsFull(t *testing.T) {
	policy := QueuePolicy{MaxQueueLength: 3, ReservedPrioritySlots: 1}

	assert.ErrorIs(t, policy.Admit(2, 1, true), ErrPrioritySlotsFull)
	// Non-priority customers are untouched by the priority quota.
	assert.NoError(t, policy.Admit(2, 1, false))
}

func TestAdmit_FullQueueRejectsPriorityAsFull(t *testing.T) {
	policy := QueuePolicy{MaxQueueLength: 3, ReservedPrioritySlots: 1}

	// A priority customer against a full queue hits the overall cap,
	// never the priority quota.
	assert.ErrorIs(t, policy.Admit(3, 1, true), ErrQueueFull)
	assert.ErrorIs(t, policy.Admit(3, 0, true), ErrQueueFull)
}
