package behavioral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"patternlab/internal/domain"
	"patternlab/internal/patterns/behavioral"
)

func TestState_ForwardToDelivered(t *testing.T) {
	got := behavioral.State(domain.Input{Args: []string{"forward", "forward"}})
	assert.Equal(t, domain.Trace{
		"Order placed.",
		"Order shipped.",
		"Order delivered.",
	}, got)
}

func TestState_ForwardPastTerminalIsReportedAndStateUnchanged(t *testing.T) {
	got := behavioral.State(domain.Input{Args: []string{"forward", "forward", "forward", "back"}})
	assert.Equal(t, domain.Trace{
		"Order placed.",
		"Order shipped.",
		"Order delivered.",
		"Order already delivered.",
		// The extra forward did not move the state: back still lands on Shipped.
		"Order shipped.",
	}, got)
}

func TestState_BackwardTerminalAtPlaced(t *testing.T) {
	got := behavioral.State(domain.Input{Args: []string{"back"}})
	assert.Equal(t, domain.Trace{
		"Order placed.",
		"Order already placed.",
	}, got)
}

func TestState_UnknownTransitionSkipped(t *testing.T) {
	got := behavioral.State(domain.Input{Args: []string{"sideways", "forward"}})
	assert.Equal(t, domain.Trace{
		"Order placed.",
		"Unknown transition: sideways",
		"Order shipped.",
	}, got)
}

func TestState_DefaultInput(t *testing.T) {
	got := behavioral.State(domain.Input{})
	assert.Equal(t, domain.Trace{
		"Order placed.",
		"Order shipped.",
		"Order delivered.",
	}, got)
}
