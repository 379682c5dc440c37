package creational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"patternlab/internal/domain"
	"patternlab/internal/patterns/creational"
)

// Editing the clone must never show through on the original: the trace's
// first and last lines print the original before and after the edit.
func TestPrototype_CloneIsStructurallyIndependent(t *testing.T) {
	got := creational.Prototype(domain.Input{Args: []string{"Plan"}})
	assert.Equal(t, domain.Trace{
		`Original: "Plan" [final]`,
		`Clone edited: "Plan (draft)" [draft]`,
		`Original after clone edit: "Plan" [final]`,
	}, got)
	assert.Equal(t, got[0], "Original: "+got[2][len("Original after clone edit: "):])
}

func TestPrototype_DefaultInput(t *testing.T) {
	got := creational.Prototype(domain.Input{})
	assert.Equal(t, `Original: "Quarterly Report" [final]`, got[0])
	assert.Equal(t, `Original after clone edit: "Quarterly Report" [final]`, got[2])
}
