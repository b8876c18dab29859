package strength

import (
	"math"

	"github.com/vmilosevic/liftinsights/internal/profile"
	"github.com/vmilosevic/liftinsights/internal/records"
)

// AgeAdjustment eases the strength standards for older lifters: past the
// cutoff age, the required ratio grows by PerYearFactor per year, which is
// applied by dividing the absolute threshold weight by the resulting factor.
type AgeAdjustment struct {
	CutoffAge     int
	PerYearFactor float64
}

var DefaultAgeAdjustment = AgeAdjustment{
	CutoffAge:     40,
	PerYearFactor: 0.01,
}

func (a AgeAdjustment) Factor(age int) float64 {
	if age <= a.CutoffAge {
		return 1.0
	}
	return 1 + float64(age-a.CutoffAge)*a.PerYearFactor
}

// TierThresholds are the absolute weights, in Unit, a lift has to reach for
// each tier. The Beginner threshold is implicitly 0.
type TierThresholds struct {
	Intermediate float64    `json:"intermediate"`
	Advanced     float64    `json:"advanced"`
	Elite        float64    `json:"elite"`
	Unit         WeightUnit `json:"unit"`
}

// threshold returns the absolute weight needed for the given tier,
// 0 for Beginner, NaN for N/A.
func (t TierThresholds) threshold(level Level) float64 {
	switch level {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return t.Intermediate
	case LevelAdvanced:
		return t.Advanced
	case LevelElite:
		return t.Elite
	default:
		return math.NaN()
	}
}

// Classifier turns a personal record plus a user profile into a strength
// tier. It is pure and total: missing data always degrades to N/A, never to
// an error or a guessed default.
type Classifier struct {
	ageAdj AgeAdjustment
}

func NewClassifier(ageAdj AgeAdjustment) *Classifier {
	return &Classifier{
		ageAdj: ageAdj,
	}
}

// Classify resolves the applicable standard for the record's exercise,
// computes the absolute tier thresholds in the record's own unit and returns
// the highest tier the record's weight reaches.
func (c *Classifier) Classify(rec records.PersonalRecord, prof profile.Profile) Level {
	if math.IsNaN(rec.Weight) || rec.Weight < 0 {
		// malformed weights are a data-entry boundary bug, degrade silently
		return LevelNA
	}

	thresholds := c.Thresholds(rec.ExerciseName, prof, WeightUnit(rec.WeightUnit))
	if thresholds == nil {
		return LevelNA
	}

	switch {
	case rec.Weight >= thresholds.Elite:
		return LevelElite
	case rec.Weight >= thresholds.Advanced:
		return LevelAdvanced
	case rec.Weight >= thresholds.Intermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Thresholds computes the absolute tier thresholds for an exercise in the
// requested output unit, rounded up to the nearest whole unit. Returns nil
// when the exercise is unknown or the profile lacks the required base value
// or gender row.
func (c *Classifier) Thresholds(exerciseName string, prof profile.Profile, outputUnit WeightUnit) *TierThresholds {
	entry, ok := StandardFor(exerciseName)
	if !ok {
		return nil
	}

	baseKg, ok := baseValueKg(entry.BaseType, prof)
	if !ok {
		return nil
	}

	ratios, ok := entry.Standards[Gender(prof.Gender)]
	if !ok {
		return nil
	}

	ageFactor := 1.0
	if prof.Age != nil {
		ageFactor = c.ageAdj.Factor(*prof.Age)
	}

	toThreshold := func(ratio float64) float64 {
		thresholdKg := (ratio * baseKg) / ageFactor
		return math.Ceil(FromKg(thresholdKg, outputUnit))
	}

	return &TierThresholds{
		Intermediate: toThreshold(ratios.Intermediate),
		Advanced:     toThreshold(ratios.Advanced),
		Elite:        toThreshold(ratios.Elite),
		Unit:         outputUnit,
	}
}

func baseValueKg(baseType BaseType, prof profile.Profile) (float64, bool) {
	switch baseType {
	case BaseBodyweight:
		if prof.WeightValue == nil || *prof.WeightValue <= 0 {
			return 0, false
		}
		return ToKg(*prof.WeightValue, WeightUnit(prof.WeightUnit)), true
	case BaseMuscleMass:
		if prof.SkeletalMuscleMassValue == nil || *prof.SkeletalMuscleMassValue <= 0 {
			return 0, false
		}
		return ToKg(*prof.SkeletalMuscleMassValue, WeightUnit(prof.SkeletalMuscleMassUnit)), true
	default:
		return 0, false
	}
}
