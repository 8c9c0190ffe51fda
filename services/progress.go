package services

import "math"

// Progress bounds
const (
	MinProgressPercent = 0
	MaxProgressPercent = 100
)

// ComputeProgressPercent computes a learner's percent-complete for a course
// from the course's active material ids and the learner's completed material
// ids. Only completions that intersect the active set count. An empty active
// set yields 0, never a division by zero. Rounding is half-away-from-zero
// and the result is clamped to [0, 100].
func ComputeProgressPercent(activeMaterialIDs, completedMaterialIDs []uint) int {
	active := make(map[uint]bool, len(activeMaterialIDs))
	for _, id := range activeMaterialIDs {
		active[id] = true
	}

	if len(active) == 0 {
		return MinProgressPercent
	}

	counted := make(map[uint]bool, len(completedMaterialIDs))
	completed := 0
	for _, id := range completedMaterialIDs {
		if active[id] && !counted[id] {
			counted[id] = true
			completed++
		}
	}

	percent := int(math.Round(float64(completed) * MaxProgressPercent / float64(len(active))))

	if percent < MinProgressPercent {
		percent = MinProgressPercent
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}

	return percent
}
