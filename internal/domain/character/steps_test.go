package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteps_Order(t *testing.T) {
	steps := Steps()

	assert.Len(t, steps, 11)
	assert.Equal(t, StepNameEntry, steps[0])
	assert.Equal(t, StepFinalize, steps[len(steps)-1])

	for i, step := range steps {
		assert.Equal(t, i, step.Index(), "index of %s", step)
	}
}

func TestStep_IndexUnknown(t *testing.T) {
	assert.Equal(t, -1, Step("bogus").Index())
}

func TestDependentsOf(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want []Step
	}{
		{
			name: "type invalidates everything derived from it",
			step: StepTypeSelect,
			want: []Step{
				StepFocusSelect,
				StepStatAllocation,
				StepAbilitySelect,
				StepCypherSelect,
				StepEquipmentShop,
			},
		},
		{
			name: "origin invalidates stats and shop",
			step: StepOriginSelect,
			want: []Step{StepStatAllocation, StepEquipmentShop},
		},
		{
			name: "name has no dependents",
			step: StepNameEntry,
			want: nil,
		},
		{
			name: "oddity has no dependents",
			step: StepOdditySelect,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DependentsOf(tt.step))
		})
	}
}

func TestDependentsOf_NeverIncludesSelf(t *testing.T) {
	for _, step := range Steps() {
		for _, dep := range DependentsOf(step) {
			assert.NotEqual(t, step, dep)
		}
	}
}
