package strength

import (
	"fmt"

	"go.uber.org/multierr"
)

// BaseType says what body quantity a standard's ratios are relative to.
type BaseType string

const (
	// BaseBodyweight - thresholds are ratios of the user's bodyweight
	BaseBodyweight BaseType = "bw"
	// BaseMuscleMass - thresholds are ratios of the user's skeletal muscle mass
	BaseMuscleMass BaseType = "smm"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// TierRatios holds the threshold multipliers for a gender.
// The Beginner threshold is implicitly 0.
type TierRatios struct {
	Intermediate float64
	Advanced     float64
	Elite        float64
}

// StandardEntry is the per-exercise strength standard: the base quantity the
// ratios apply to and the gender-specific tier ratios, in kg-equivalent terms.
type StandardEntry struct {
	BaseType  BaseType
	Standards map[Gender]TierRatios
}

// strengthStandards is keyed by canonical (normalized) exercise name.
// Free-weight compound lifts are bodyweight-relative; machine isolation
// exercises are relative to skeletal muscle mass.
var strengthStandards = map[string]StandardEntry{
	"bench press": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 1.00, Advanced: 1.25, Elite: 1.50},
			GenderFemale: {Intermediate: 0.50, Advanced: 0.75, Elite: 1.00},
		},
	},
	"row": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.90, Advanced: 1.10, Elite: 1.35},
			GenderFemale: {Intermediate: 0.45, Advanced: 0.65, Elite: 0.85},
		},
	},
	"overhead press": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.60, Advanced: 0.80, Elite: 1.00},
			GenderFemale: {Intermediate: 0.35, Advanced: 0.50, Elite: 0.65},
		},
	},
	"lat pulldown": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.80, Advanced: 1.00, Elite: 1.20},
			GenderFemale: {Intermediate: 0.50, Advanced: 0.70, Elite: 0.90},
		},
	},
	"squat": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 1.25, Advanced: 1.75, Elite: 2.25},
			GenderFemale: {Intermediate: 0.90, Advanced: 1.25, Elite: 1.60},
		},
	},
	"deadlift": {
		BaseType: BaseBodyweight,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 1.50, Advanced: 2.00, Elite: 2.50},
			GenderFemale: {Intermediate: 1.00, Advanced: 1.50, Elite: 2.00},
		},
	},
	"leg extension": {
		BaseType: BaseMuscleMass,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 1.10, Advanced: 1.40, Elite: 1.70},
			GenderFemale: {Intermediate: 0.90, Advanced: 1.15, Elite: 1.40},
		},
	},
	"leg curl": {
		BaseType: BaseMuscleMass,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.90, Advanced: 1.15, Elite: 1.40},
			GenderFemale: {Intermediate: 0.75, Advanced: 0.95, Elite: 1.20},
		},
	},
	"hip adduction": {
		BaseType: BaseMuscleMass,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.85, Advanced: 1.05, Elite: 1.30},
			GenderFemale: {Intermediate: 0.80, Advanced: 1.00, Elite: 1.25},
		},
	},
	"hip abduction": {
		BaseType: BaseMuscleMass,
		Standards: map[Gender]TierRatios{
			GenderMale:   {Intermediate: 0.80, Advanced: 1.00, Elite: 1.25},
			GenderFemale: {Intermediate: 0.75, Advanced: 0.95, Elite: 1.20},
		},
	},
}

// StandardFor returns the strength standard entry for an exercise name
// (raw or canonical). The second return value is false for exercises the
// table does not know, which classify to N/A.
func StandardFor(exerciseName string) (StandardEntry, bool) {
	entry, ok := strengthStandards[NormalizeExerciseName(exerciseName)]
	return entry, ok
}

// StandardTypeFor returns the base type of an exercise's standard.
func StandardTypeFor(exerciseName string) (BaseType, bool) {
	entry, ok := StandardFor(exerciseName)
	if !ok {
		return "", false
	}
	return entry.BaseType, true
}

// ValidateStandards checks the static standards table: every entry needs
// both gender rows and strictly increasing tier ratios. A violation is a
// configuration bug, caught at startup and in tests, never per call.
func ValidateStandards() error {
	var err error
	for name, entry := range strengthStandards {
		if entry.BaseType != BaseBodyweight && entry.BaseType != BaseMuscleMass {
			err = multierr.Append(err, fmt.Errorf("standard [%s]: unknown base type %q", name, entry.BaseType))
		}
		for _, gender := range []Gender{GenderMale, GenderFemale} {
			ratios, ok := entry.Standards[gender]
			if !ok {
				err = multierr.Append(err, fmt.Errorf("standard [%s]: missing %s row", name, gender))
				continue
			}
			if ratios.Intermediate <= 0 {
				err = multierr.Append(err, fmt.Errorf("standard [%s] %s: intermediate ratio must be positive", name, gender))
			}
			if ratios.Intermediate >= ratios.Advanced || ratios.Advanced >= ratios.Elite {
				err = multierr.Append(err, fmt.Errorf(
					"standard [%s] %s: ratios not increasing (%v, %v, %v)",
					name, gender, ratios.Intermediate, ratios.Advanced, ratios.Elite,
				))
			}
		}
		if name != NormalizeExerciseName(name) {
			err = multierr.Append(err, fmt.Errorf("standard [%s]: key is not canonical", name))
		}
	}
	return err
}
