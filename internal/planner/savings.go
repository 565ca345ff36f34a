package planner

import (
	"math"

	"github.com/limbo/planner/pkg/entity"
)

// Progress clamps the displayed percentage to [0, 100]; remaining is left
// unclamped and goes negative once the target is exceeded.
func Progress(current, target float64) entity.SavingsProgress {
	p := entity.SavingsProgress{Remaining: target - current}
	if target == 0 {
		return p
	}
	ratio := current / target * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return p
	}
	p.Percentage = int(min(max(math.Round(ratio), 0), 100))
	return p
}
