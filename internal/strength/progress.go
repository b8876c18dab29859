package strength

// Progress says how far a lift is between its current tier threshold and the
// next one, for progress-bar rendering.
type Progress struct {
	Percentage      float64 `json:"percentage"`
	WeightRemaining float64 `json:"weightRemaining"`
	NextLevel       Level   `json:"nextLevel"`
}

// ProjectProgress returns the progress of a lift (weight in the same unit as
// thresholds) from its current tier toward the next one. Nil for Elite
// lifts (no next tier), unclassifiable lifts and nil thresholds.
func ProjectProgress(weight float64, thresholds *TierThresholds, level Level) *Progress {
	if thresholds == nil || !level.Known() || level == LevelElite {
		return nil
	}

	next := level.Next()
	currentThreshold := thresholds.threshold(level)
	nextThreshold := thresholds.threshold(next)
	if nextThreshold <= currentThreshold {
		return nil
	}

	fraction := (weight - currentThreshold) / (nextThreshold - currentThreshold)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	remaining := nextThreshold - weight
	if remaining < 0 {
		remaining = 0
	}

	return &Progress{
		Percentage:      fraction * 100,
		WeightRemaining: remaining,
		NextLevel:       next,
	}
}
