package strength

import (
	"fmt"

	"github.com/vmilosevic/liftinsights/internal/profile"
	"github.com/vmilosevic/liftinsights/internal/records"
)

// ImbalanceType names a monitored opposing-lift pair.
type ImbalanceType string

const (
	HorizontalPushPull ImbalanceType = "Horizontal Push vs. Pull"
	VerticalPushPull   ImbalanceType = "Vertical Push vs. Pull"
	HamstringQuad      ImbalanceType = "Hamstring vs. Quad"
	AdductorAbductor   ImbalanceType = "Adductor vs. Abductor"
)

// ImbalanceTypes lists all monitored pairs, in report order.
var ImbalanceTypes = []ImbalanceType{
	HorizontalPushPull,
	VerticalPushPull,
	HamstringQuad,
	AdductorAbductor,
}

// Focus is the verdict for an opposing-lift pair. A tier mismatch beats a
// ratio deviation: tier disparity is the more actionable signal, so it is
// reported even when the numeric ratio happens to fall in-band.
type Focus string

const (
	FocusBalanced       Focus = "Balanced"
	FocusLevelImbalance Focus = "Level Imbalance"
	FocusRatioImbalance Focus = "Ratio Imbalance"
)

// PairConfig describes one opposing-lift pair: the canonical exercise names
// qualifying for each side and how to compute the pair ratio from the two
// best weights in kg.
type PairConfig struct {
	Type         ImbalanceType
	Lift1Options []string
	Lift2Options []string
	Ratio        func(w1Kg, w2Kg float64) float64
}

func defaultRatio(w1Kg, w2Kg float64) float64 {
	return w1Kg / w2Kg
}

var pairConfigs = map[ImbalanceType]PairConfig{
	HorizontalPushPull: {
		Type:         HorizontalPushPull,
		Lift1Options: []string{"bench press"},
		Lift2Options: []string{"row"},
		Ratio:        defaultRatio,
	},
	VerticalPushPull: {
		Type:         VerticalPushPull,
		Lift1Options: []string{"overhead press"},
		Lift2Options: []string{"lat pulldown"},
		Ratio:        defaultRatio,
	},
	HamstringQuad: {
		Type:         HamstringQuad,
		Lift1Options: []string{"leg curl"},
		Lift2Options: []string{"leg extension"},
		Ratio:        defaultRatio,
	},
	AdductorAbductor: {
		Type:         AdductorAbductor,
		Lift1Options: []string{"hip adduction"},
		Lift2Options: []string{"hip abduction"},
		Ratio:        defaultRatio,
	},
}

// PairConfigFor returns the configuration of a monitored pair.
func PairConfigFor(imbalanceType ImbalanceType) (PairConfig, bool) {
	cfg, ok := pairConfigs[imbalanceType]
	return cfg, ok
}

// RatioBand is the balanced ratio interval for a pair at a given gender and
// guiding tier. Bands are not symmetric around Target; the literal table
// values are authoritative.
type RatioBand struct {
	Lower  float64
	Upper  float64
	Target float64
}

// ratioBands is keyed by imbalance type, gender, then guiding tier
// (the weaker of the two classified tiers).
var ratioBands = map[ImbalanceType]map[Gender]map[Level]RatioBand{
	HorizontalPushPull: {
		GenderMale: {
			LevelBeginner:     {Lower: 0.80, Upper: 1.40, Target: 1.10},
			LevelIntermediate: {Lower: 0.90, Upper: 1.35, Target: 1.10},
			LevelAdvanced:     {Lower: 0.95, Upper: 1.30, Target: 1.10},
			LevelElite:        {Lower: 1.00, Upper: 1.25, Target: 1.10},
		},
		GenderFemale: {
			LevelBeginner:     {Lower: 0.70, Upper: 1.30, Target: 1.00},
			LevelIntermediate: {Lower: 0.80, Upper: 1.25, Target: 1.00},
			LevelAdvanced:     {Lower: 0.85, Upper: 1.20, Target: 1.00},
			LevelElite:        {Lower: 0.90, Upper: 1.15, Target: 1.00},
		},
	},
	VerticalPushPull: {
		GenderMale: {
			LevelBeginner:     {Lower: 0.55, Upper: 1.05, Target: 0.80},
			LevelIntermediate: {Lower: 0.60, Upper: 1.00, Target: 0.80},
			LevelAdvanced:     {Lower: 0.65, Upper: 0.95, Target: 0.80},
			LevelElite:        {Lower: 0.70, Upper: 0.95, Target: 0.80},
		},
		GenderFemale: {
			LevelBeginner:     {Lower: 0.50, Upper: 1.00, Target: 0.75},
			LevelIntermediate: {Lower: 0.55, Upper: 0.95, Target: 0.75},
			LevelAdvanced:     {Lower: 0.60, Upper: 0.90, Target: 0.75},
			LevelElite:        {Lower: 0.65, Upper: 0.90, Target: 0.75},
		},
	},
	HamstringQuad: {
		GenderMale: {
			LevelBeginner:     {Lower: 0.50, Upper: 1.00, Target: 0.70},
			LevelIntermediate: {Lower: 0.55, Upper: 0.95, Target: 0.70},
			LevelAdvanced:     {Lower: 0.60, Upper: 0.90, Target: 0.70},
			LevelElite:        {Lower: 0.60, Upper: 0.85, Target: 0.70},
		},
		GenderFemale: {
			LevelBeginner:     {Lower: 0.50, Upper: 1.00, Target: 0.70},
			LevelIntermediate: {Lower: 0.55, Upper: 0.95, Target: 0.70},
			LevelAdvanced:     {Lower: 0.60, Upper: 0.90, Target: 0.70},
			LevelElite:        {Lower: 0.60, Upper: 0.85, Target: 0.70},
		},
	},
	AdductorAbductor: {
		GenderMale: {
			LevelBeginner:     {Lower: 0.75, Upper: 1.35, Target: 1.00},
			LevelIntermediate: {Lower: 0.80, Upper: 1.30, Target: 1.00},
			LevelAdvanced:     {Lower: 0.85, Upper: 1.25, Target: 1.00},
			LevelElite:        {Lower: 0.85, Upper: 1.20, Target: 1.00},
		},
		GenderFemale: {
			LevelBeginner:     {Lower: 0.75, Upper: 1.35, Target: 1.05},
			LevelIntermediate: {Lower: 0.80, Upper: 1.30, Target: 1.05},
			LevelAdvanced:     {Lower: 0.85, Upper: 1.25, Target: 1.05},
			LevelElite:        {Lower: 0.85, Upper: 1.20, Target: 1.05},
		},
	},
}

// Finding is a single opposing-lift comparison result. When HasData is
// false only ImbalanceType is meaningful: one side has no qualifying PR or
// the denominator converts to 0 kg.
type Finding struct {
	ImbalanceType ImbalanceType `json:"imbalanceType"`
	HasData       bool          `json:"hasData"`

	Lift1Name   string     `json:"lift1Name,omitempty"`
	Lift1Weight float64    `json:"lift1Weight,omitempty"`
	Lift1Unit   WeightUnit `json:"lift1Unit,omitempty"`
	Lift1Level  Level      `json:"lift1Level,omitempty"`

	Lift2Name   string     `json:"lift2Name,omitempty"`
	Lift2Weight float64    `json:"lift2Weight,omitempty"`
	Lift2Unit   WeightUnit `json:"lift2Unit,omitempty"`
	Lift2Level  Level      `json:"lift2Level,omitempty"`

	UserRatio     string `json:"userRatio,omitempty"`
	TargetRatio   string `json:"targetRatio,omitempty"`
	BalancedRange string `json:"balancedRange,omitempty"`

	Focus Focus `json:"imbalanceFocus,omitempty"`
}

// Detector compares opposing lifts and decides whether a pair is balanced,
// level-imbalanced or ratio-imbalanced.
type Detector struct {
	classifier *Classifier
}

func NewDetector(classifier *Classifier) *Detector {
	return &Detector{
		classifier: classifier,
	}
}

// Detect runs the comparison for one pair over a user's personal records.
func (d *Detector) Detect(pair PairConfig, recs []records.PersonalRecord, prof profile.Profile) Finding {
	lift1, ok1 := bestPR(recs, pair.Lift1Options)
	lift2, ok2 := bestPR(recs, pair.Lift2Options)
	if !ok1 || !ok2 {
		return Finding{ImbalanceType: pair.Type}
	}

	weight1Kg := ToKg(lift1.Weight, WeightUnit(lift1.WeightUnit))
	weight2Kg := ToKg(lift2.Weight, WeightUnit(lift2.WeightUnit))
	if weight2Kg == 0 {
		return Finding{ImbalanceType: pair.Type}
	}

	level1 := d.classifier.Classify(lift1, prof)
	level2 := d.classifier.Classify(lift2, prof)

	ratio := pair.Ratio(weight1Kg, weight2Kg)

	finding := Finding{
		ImbalanceType: pair.Type,
		HasData:       true,
		Lift1Name:     DisplayName(NormalizeExerciseName(lift1.ExerciseName)),
		Lift1Weight:   lift1.Weight,
		Lift1Unit:     WeightUnit(lift1.WeightUnit),
		Lift1Level:    level1,
		Lift2Name:     DisplayName(NormalizeExerciseName(lift2.ExerciseName)),
		Lift2Weight:   lift2.Weight,
		Lift2Unit:     WeightUnit(lift2.WeightUnit),
		Lift2Level:    level2,
		UserRatio:     formatRatio(ratio),
		TargetRatio:   "N/A",
		BalancedRange: "N/A",
	}

	guiding := WeakerOf(level1, level2)
	band, bandOK := bandFor(pair.Type, Gender(prof.Gender), guiding)
	if bandOK {
		finding.TargetRatio = formatRatio(band.Target)
		finding.BalancedRange = fmt.Sprintf("%.2f-%.2f:1", band.Lower, band.Upper)
	}

	// a resolved tier mismatch wins over any ratio consideration
	switch {
	case level1.Known() && level2.Known() && level1 != level2:
		finding.Focus = FocusLevelImbalance
	case bandOK && (ratio < band.Lower || ratio > band.Upper):
		finding.Focus = FocusRatioImbalance
	default:
		finding.Focus = FocusBalanced
	}

	return finding
}

// DetectAll runs every monitored pair and reports whether any pair with
// data is not balanced.
func (d *Detector) DetectAll(recs []records.PersonalRecord, prof profile.Profile) (findings []Finding, anyImbalance bool) {
	for _, imbalanceType := range ImbalanceTypes {
		finding := d.Detect(pairConfigs[imbalanceType], recs, prof)
		findings = append(findings, finding)
		if finding.HasData && finding.Focus != FocusBalanced {
			anyImbalance = true
		}
	}
	return findings, anyImbalance
}

func bandFor(imbalanceType ImbalanceType, gender Gender, guiding Level) (RatioBand, bool) {
	if !guiding.Known() {
		return RatioBand{}, false
	}
	genderBands, ok := ratioBands[imbalanceType]
	if !ok {
		return RatioBand{}, false
	}
	tierBands, ok := genderBands[gender]
	if !ok {
		return RatioBand{}, false
	}
	band, ok := tierBands[guiding]
	return band, ok
}

// bestPR finds the heaviest qualifying record (by weight converted to kg)
// among the given canonical exercise options. Strictly heavier wins; the
// first-seen record keeps its place on an exact tie.
func bestPR(recs []records.PersonalRecord, options []string) (records.PersonalRecord, bool) {
	qualifying := make(map[string]bool, len(options))
	for _, opt := range options {
		qualifying[opt] = true
	}

	var best records.PersonalRecord
	var bestKg float64
	found := false
	for _, rec := range recs {
		if !qualifying[NormalizeExerciseName(rec.ExerciseName)] {
			continue
		}
		kg := ToKg(rec.Weight, WeightUnit(rec.WeightUnit))
		if !found || kg > bestKg {
			best = rec
			bestKg = kg
			found = true
		}
	}
	return best, found
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
