package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, gender, age, weight_value, weight_unit,
				skeletal_muscle_mass_value, skeletal_muscle_mass_unit, updated_at
			FROM user_profile
			WHERE id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrProfileNotFound
	}

	var prof Profile
	var gender, weightUnit, smmUnit *string
	if err := rows.Scan(
		&prof.ID, &gender, &prof.Age, &prof.WeightValue, &weightUnit,
		&prof.SkeletalMuscleMassValue, &smmUnit, &prof.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	if gender != nil {
		prof.Gender = *gender
	}
	if weightUnit != nil {
		prof.WeightUnit = *weightUnit
	}
	if smmUnit != nil {
		prof.SkeletalMuscleMassUnit = *smmUnit
	}

	return &prof, nil
}

// Upsert stores the profile, inserting it if the user has none yet.
func (r *Repo) Upsert(ctx context.Context, prof Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", prof.ID))

	prof.UpdatedAt = time.Now()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile
				(id, gender, age, weight_value, weight_unit,
				skeletal_muscle_mass_value, skeletal_muscle_mass_unit, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				gender = $2, age = $3, weight_value = $4, weight_unit = $5,
				skeletal_muscle_mass_value = $6, skeletal_muscle_mass_unit = $7,
				updated_at = $8;`,
		prof.ID, prof.Gender, prof.Age, prof.WeightValue, prof.WeightUnit,
		prof.SkeletalMuscleMassValue, prof.SkeletalMuscleMassUnit, prof.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("exec upsert: %w", err)
	}

	return &prof, nil
}
