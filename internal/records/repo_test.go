//go:build integration_test || all_tests

package records

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/vmilosevic/liftinsights/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepoSetup(t *testing.T) (*Repo, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "liftinsights",
		TracingEnabled: false,
	})
	require.NoError(t, err)

	return NewRepo(dbPool), func() {
		dbPool.Close()
	}
}

func newTestRecord() PersonalRecord {
	return PersonalRecord{
		ExerciseName: gofakeit.RandomString([]string{"bench press", "squat", "deadlift", "overhead press"}),
		Weight:       gofakeit.Float64Range(20, 220),
		WeightUnit:   gofakeit.RandomString([]string{"kg", "lbs"}),
		Category:     gofakeit.RandomString([]string{"chest", "legs", "back", "shoulders"}),
		Date:         time.Now().Add(-time.Duration(gofakeit.Number(1, 240)) * time.Hour),
		CreatedAt:    time.Now(),
	}
}

func TestRepo_Add_Get_Delete(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	rec := newTestRecord()
	added, err := repo.Add(ctx, rec)
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID > 0)

	gotten, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ExerciseName, gotten.ExerciseName)
	assert.InDelta(t, rec.Weight, gotten.Weight, 0.001)
	assert.Equal(t, rec.WeightUnit, gotten.WeightUnit)

	require.NoError(t, repo.Delete(ctx, added.ID))

	_, err = repo.Get(ctx, added.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	added, err := repo.Add(ctx, newTestRecord())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repo.Delete(ctx, added.ID))
	}()

	added.Weight = 142.5
	added.WeightUnit = "kg"
	require.NoError(t, repo.Update(ctx, added))

	gotten, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.InDelta(t, 142.5, gotten.Weight, 0.001)
	assert.Equal(t, "kg", gotten.WeightUnit)
}

func TestRepo_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	rec := newTestRecord()
	rec.ID = -1
	assert.ErrorIs(t, repo.Update(ctx, &rec), ErrRecordNotFound)
}

func TestRepo_ListAll_Filtered(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	exerciseName := gofakeit.UUID()
	var addedIDs []int
	for i := 0; i < 3; i++ {
		rec := newTestRecord()
		rec.ExerciseName = exerciseName
		added, err := repo.Add(ctx, rec)
		require.NoError(t, err)
		addedIDs = append(addedIDs, added.ID)
	}
	defer func() {
		for _, id := range addedIDs {
			assert.NoError(t, repo.Delete(ctx, id))
		}
	}()

	recs, err := repo.ListAll(ctx, ListParams{ExerciseName: exerciseName})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for _, rec := range recs {
		assert.Equal(t, exerciseName, rec.ExerciseName)
	}

	count, err := repo.Count(ctx, ListParams{ExerciseName: exerciseName})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepo_List_Paging(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	exerciseName := gofakeit.UUID()
	var addedIDs []int
	for i := 0; i < 5; i++ {
		rec := newTestRecord()
		rec.ExerciseName = exerciseName
		added, err := repo.Add(ctx, rec)
		require.NoError(t, err)
		addedIDs = append(addedIDs, added.ID)
	}
	defer func() {
		for _, id := range addedIDs {
			assert.NoError(t, repo.Delete(ctx, id))
		}
	}()

	page1, total, err := repo.List(ctx, PageParams{
		ListParams: ListParams{ExerciseName: exerciseName},
		Page:       1,
		Size:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page1, 2)

	_, _, err = repo.List(ctx, PageParams{
		ListParams: ListParams{ExerciseName: exerciseName},
		Page:       0,
		Size:       2,
	})
	require.Error(t, err)
}

func TestRepo_Workouts(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	workout := WorkoutLog{
		Name:      gofakeit.UUID(),
		Notes:     gofakeit.Sentence(6),
		Duration:  gofakeit.Number(20, 120),
		Date:      time.Now(),
		CreatedAt: time.Now(),
	}

	added, err := repo.AddWorkout(ctx, workout)
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID > 0)

	workouts, err := repo.ListWorkouts(ctx, 50)
	require.NoError(t, err)

	found := false
	for _, w := range workouts {
		if w.ID == added.ID {
			found = true
			assert.Equal(t, workout.Name, w.Name)
			assert.Equal(t, workout.Duration, w.Duration)
		}
	}
	assert.True(t, found)

	_, err = repo.ListWorkouts(ctx, 0)
	require.Error(t, err)
}
