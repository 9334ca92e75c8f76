package game

import (
	"fmt"
	"time"
)

const (
	// DefaultGridSize is the side of the square board
	DefaultGridSize = 10

	// DefaultFoodReward is the score added per food eaten
	DefaultFoodReward = 10

	// ClassicFoodReward is the reward of the plain variant without hazards
	ClassicFoodReward = 1

	// DefaultSpeedStep is how much the tick interval shrinks per food eaten
	DefaultSpeedStep = 20 * time.Millisecond

	// DefaultSpeedFloor is the shortest tick interval the ramp reaches
	DefaultSpeedFloor = 80 * time.Millisecond

	// PlacementAttemptFactor bounds random placement draws to factor*area before scanning
	PlacementAttemptFactor = 8
)

// Rules configures one game variant
type Rules struct {
	GridSize   int
	FoodReward int
	SpeedStep  time.Duration
	SpeedFloor time.Duration
	Hazard     bool // poison item that ends the game on contact
}

// DefaultRules is the richest variant: hazard item, +10 per food
func DefaultRules() Rules {
	return Rules{
		GridSize:   DefaultGridSize,
		FoodReward: DefaultFoodReward,
		SpeedStep:  DefaultSpeedStep,
		SpeedFloor: DefaultSpeedFloor,
		Hazard:     true,
	}
}

// ClassicRules is the plain variant: food only, +1 per food
func ClassicRules() Rules {
	r := DefaultRules()
	r.FoodReward = ClassicFoodReward
	r.Hazard = false
	return r
}

// Validate checks the rules can drive a game
func (r Rules) Validate() error {
	// Body, food and hazard need three distinct cells
	if r.GridSize < 2 {
		return fmt.Errorf("grid size %d below minimum 2", r.GridSize)
	}
	if r.FoodReward <= 0 {
		return fmt.Errorf("food reward must be positive, got %d", r.FoodReward)
	}
	if r.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative, got %v", r.SpeedStep)
	}
	if r.SpeedFloor <= 0 {
		return fmt.Errorf("speed floor must be positive, got %v", r.SpeedFloor)
	}
	return nil
}

// NextInterval applies the speed ramp after a food is eaten
func (r Rules) NextInterval(cur time.Duration) time.Duration {
	next := cur - r.SpeedStep
	if next < r.SpeedFloor {
		next = r.SpeedFloor
	}
	if next > cur {
		// Starting interval already under the floor never speeds back up
		return cur
	}
	return next
}

// Variant names the rule set for leaderboard keys: empty for the defaults,
// "Classic" for ClassicRules, otherwise every parameter that shapes the score
func (r Rules) Variant() string {
	switch r {
	case DefaultRules():
		return ""
	case ClassicRules():
		return "Classic"
	}
	hazard := "nohazard"
	if r.Hazard {
		hazard = "hazard"
	}
	return fmt.Sprintf("Custom-%dx%d-%dpt-%s-%dms-%dms",
		r.GridSize, r.GridSize, r.FoodReward, hazard, r.SpeedStep.Milliseconds(), r.SpeedFloor.Milliseconds())
}
