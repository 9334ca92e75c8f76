package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRules_Variant(t *testing.T) {
	assert.Empty(t, DefaultRules().Variant())
	assert.Equal(t, "Classic", ClassicRules().Variant())

	// Classic reward with the hazard still on matches neither preset
	mixed := DefaultRules()
	mixed.FoodReward = ClassicFoodReward
	assert.Equal(t, "Custom-10x10-1pt-hazard-20ms-80ms", mixed.Variant())

	big := ClassicRules()
	big.GridSize = 40
	assert.Equal(t, "Custom-40x40-1pt-nohazard-20ms-80ms", big.Variant())

	slow := DefaultRules()
	slow.SpeedFloor = 120 * time.Millisecond
	assert.NotEqual(t, mixed.Variant(), slow.Variant())
	assert.NotEmpty(t, slow.Variant())
}

func TestRules_NextInterval(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, 480*time.Millisecond, r.NextInterval(500*time.Millisecond))
	assert.Equal(t, 80*time.Millisecond, r.NextInterval(90*time.Millisecond))
	assert.Equal(t, 70*time.Millisecond, r.NextInterval(70*time.Millisecond))
}
