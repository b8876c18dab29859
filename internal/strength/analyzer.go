package strength

import (
	"context"
	"fmt"

	"github.com/vmilosevic/liftinsights/internal/profile"
	"github.com/vmilosevic/liftinsights/internal/records"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=strength_test

type recordsRepo interface {
	ListAll(ctx context.Context, params records.ListParams) ([]records.PersonalRecord, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

const (
	SummaryImbalanced = "Some strength imbalances were identified between opposing muscle groups."
	SummaryBalanced   = "Opposing muscle groups are well balanced, no notable imbalances found."
)

// AnalysisResponse is the full imbalance report for a user: one finding per
// monitored opposing-lift pair plus a fixed one-line summary.
type AnalysisResponse struct {
	Findings     []Finding `json:"findings"`
	AnyImbalance bool      `json:"anyImbalance"`
	Summary      string    `json:"summary"`
}

// ExerciseStatusResponse carries the classification of a user's best PR for
// one exercise, the absolute tier thresholds and the progress toward the
// next tier. Thresholds and Progress are null when the profile lacks the
// data the exercise's standard needs.
type ExerciseStatusResponse struct {
	ExerciseName string          `json:"exerciseName"`
	BestWeight   float64         `json:"bestWeight,omitempty"`
	Unit         WeightUnit      `json:"unit,omitempty"`
	Level        Level           `json:"level"`
	Thresholds   *TierThresholds `json:"thresholds,omitempty"`
	Progress     *Progress       `json:"progress,omitempty"`
}

// Analyzer glues the pure classification core to the stored records and
// profile of a user. All numeric work happens here; the AI layer downstream
// only narrates what the analyzer already decided.
type Analyzer struct {
	recordsRepo recordsRepo
	profileRepo profileRepo
	classifier  *Classifier
	detector    *Detector
}

func NewAnalyzer(recordsRepo recordsRepo, profileRepo profileRepo) *Analyzer {
	classifier := NewClassifier(DefaultAgeAdjustment)
	return &Analyzer{
		recordsRepo: recordsRepo,
		profileRepo: profileRepo,
		classifier:  classifier,
		detector:    NewDetector(classifier),
	}
}

func (a *Analyzer) Analysis(ctx context.Context, userID int) (_ *AnalysisResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.strength.analysis")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prof, err := a.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	recs, err := a.recordsRepo.ListAll(ctx, records.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	findings, anyImbalance := a.detector.DetectAll(recs, *prof)

	summary := SummaryBalanced
	if anyImbalance {
		summary = SummaryImbalanced
	}

	return &AnalysisResponse{
		Findings:     findings,
		AnyImbalance: anyImbalance,
		Summary:      summary,
	}, nil
}

func (a *Analyzer) ExerciseStatus(
	ctx context.Context,
	userID int,
	exerciseName string,
	outputUnit WeightUnit,
) (_ *ExerciseStatusResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.strength.exerciseStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	canonical := NormalizeExerciseName(exerciseName)
	span.SetAttributes(attribute.String("exercise", canonical))

	prof, err := a.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// fetch everything and group by canonical name here: stored names are
	// raw user input ("EGYM Chest Press"), only normalization unifies them
	recs, err := a.recordsRepo.ListAll(ctx, records.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	best, ok := bestPR(recs, []string{canonical})
	if !ok {
		return &ExerciseStatusResponse{
			ExerciseName: DisplayName(canonical),
			Level:        LevelNA,
		}, nil
	}

	if outputUnit != UnitKg && outputUnit != UnitLbs {
		outputUnit = WeightUnit(best.WeightUnit)
	}

	level := a.classifier.Classify(best, *prof)
	thresholds := a.classifier.Thresholds(canonical, *prof, outputUnit)

	bestWeight := FromKg(ToKg(best.Weight, WeightUnit(best.WeightUnit)), outputUnit)

	return &ExerciseStatusResponse{
		ExerciseName: DisplayName(canonical),
		BestWeight:   bestWeight,
		Unit:         outputUnit,
		Level:        level,
		Thresholds:   thresholds,
		Progress:     ProjectProgress(bestWeight, thresholds, level),
	}, nil
}
