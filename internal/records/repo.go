package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("personal record not found")

type ListParams struct {
	ExerciseName string
	Category     string
	From         *time.Time
	To           *time.Time
}

type PageParams struct {
	ListParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record PersonalRecord) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO personal_record
				(exercise_name, weight, weight_unit, category, date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		record.ExerciseName, record.Weight, record.WeightUnit, record.Category, record.Date, record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("record.id", id))

	record.ID = id
	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, weight, weight_unit, category, date, created_at
			FROM personal_record
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	recs, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}

	if len(recs) != 1 {
		return nil, ErrRecordNotFound
	}

	return &recs[0], nil
}

// ListAll returns every stored personal record matching the params.
// Exercise name filtering is a plain equality check on the raw stored name;
// name normalization and grouping happens in the strength package.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", params.ExerciseName))
	span.SetAttributes(attribute.String("category", params.Category))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, weight, weight_unit, category, date, created_at
			FROM personal_record
			WHERE ($1::text = '' OR exercise_name = $1)
			AND ($2::text = '' OR category = $2)
			AND ($3::timestamp IS NULL OR date >= $3)
			AND ($4::timestamp IS NULL OR date <= $4)
			ORDER BY date DESC;`,
		params.ExerciseName, params.Category, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2records(rows)
}

// List returns one page of personal records plus the total count.
func (r *Repo) List(ctx context.Context, params PageParams) (_ []PersonalRecord, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.ListParams)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if countAll <= limit {
		limit = countAll
		offset = 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, weight, weight_unit, category, date, created_at
			FROM personal_record
			WHERE ($1::text = '' OR exercise_name = $1)
			AND ($2::text = '' OR category = $2)
			ORDER BY date DESC
			LIMIT $3
			OFFSET $4;`,
		params.ExerciseName, params.Category, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	recs, err := r.rows2records(rows)
	if err != nil {
		return nil, -1, err
	}
	return recs, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT COUNT(*) FROM personal_record
			WHERE ($1::text = '' OR exercise_name = $1)
			AND ($2::text = '' OR category = $2);`,
		params.ExerciseName, params.Category,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if !rows.Next() {
		return -1, errors.New("unexpected error [no rows next]")
	}

	var count int
	if err := rows.Scan(&count); err != nil {
		return -1, fmt.Errorf("rows scan: %w", err)
	}
	return count, nil
}

// Update overwrites the user-editable fields of a record (weight and date).
func (r *Repo) Update(ctx context.Context, record *PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", record.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE personal_record SET weight = $1, weight_unit = $2, date = $3 WHERE id = $4;`,
		record.Weight, record.WeightUnit, record.Date, record.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM personal_record WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) AddWorkout(ctx context.Context, workout WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.addWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_log
				(name, notes, duration_minutes, date, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		workout.Name, workout.Notes, workout.Duration, workout.Date, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

// ListWorkouts returns the most recent workout logs, newest first.
func (r *Repo) ListWorkouts(ctx context.Context, limit int) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	if limit < 1 {
		return nil, errors.New("limit must be greater than 0")
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, notes, duration_minutes, date, created_at
			FROM workout_log
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var workouts []WorkoutLog
	for rows.Next() {
		var workout WorkoutLog
		if err := rows.Scan(
			&workout.ID, &workout.Name, &workout.Notes,
			&workout.Duration, &workout.Date, &workout.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, workout)
	}
	return workouts, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]PersonalRecord, error) {
	var recs []PersonalRecord
	for rows.Next() {
		var rec PersonalRecord
		if err := rows.Scan(
			&rec.ID, &rec.ExerciseName, &rec.Weight, &rec.WeightUnit,
			&rec.Category, &rec.Date, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
