package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vmilosevic/liftinsights/internal/telemetry/metrics"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"
	"github.com/vmilosevic/liftinsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

type recordsRepo interface {
	Add(ctx context.Context, record PersonalRecord) (*PersonalRecord, error)
	Get(ctx context.Context, id int) (*PersonalRecord, error)
	List(ctx context.Context, params PageParams) (_ []PersonalRecord, total int, err error)
	ListAll(ctx context.Context, params ListParams) ([]PersonalRecord, error)
	Update(ctx context.Context, record *PersonalRecord) error
	Delete(ctx context.Context, id int) error
	AddWorkout(ctx context.Context, workout WorkoutLog) (*WorkoutLog, error)
	ListWorkouts(ctx context.Context, limit int) ([]WorkoutLog, error)
}

type ListResponse struct {
	Records []PersonalRecord `json:"records"`
	Total   int              `json:"total"`
}

type DeleteRecordResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateRecordResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo           recordsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo recordsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/records", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-record")
	router.HandleFunc("/records", handler.HandleUpdate).
		Methods("PUT", "OPTIONS").Name("update-record")
	router.HandleFunc("/records/{id}", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("get-record")
	router.HandleFunc("/records/{id}", handler.HandleDelete).
		Methods("DELETE", "OPTIONS").Name("delete-record")
	router.HandleFunc("/records/list/page/{page}/size/{size}", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-records")
	router.HandleFunc("/workouts", handler.HandleAddWorkout).
		Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc("/workouts", handler.HandleListWorkouts).
		Methods("GET", "OPTIONS").Name("list-workouts")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record PersonalRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new record, unmarshal json params: %s", err)
		http.Error(w, "add record failed", http.StatusBadRequest)
		return
	}

	if record.ExerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if record.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}
	if record.WeightUnit != "kg" && record.WeightUnit != "lbs" {
		http.Error(w, "error, weight unit must be kg or lbs", http.StatusBadRequest)
		return
	}

	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	addedRecord, err := handler.repo.Add(ctx, record)
	if err != nil {
		log.Errorf("failed to add new record [%s]: %s", record.ExerciseName, err)
		http.Error(w, "error, failed to add new record", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRecords.Inc()

	addedRecordJson, err := json.Marshal(addedRecord)
	if err != nil {
		log.Errorf("marshal added record: %s", err)
		http.Error(w, "error, failed to add new record", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedRecordJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, record id invalid", http.StatusBadRequest)
		return
	}

	record, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get record %d: %s", id, err)
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal record: %s", err)
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(recordJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	params := PageParams{
		ListParams: ListParams{
			ExerciseName: r.URL.Query().Get("exercise"),
			Category:     r.URL.Query().Get("category"),
		},
		Page: page,
		Size: size,
	}

	recs, total, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list records: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{
		Records: recs,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal records list: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(listJson))
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.update")
	defer span.End()

	var record PersonalRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("update record, unmarshal json params: %s", err)
		http.Error(w, "update record failed", http.StatusBadRequest)
		return
	}

	if record.ID <= 0 {
		http.Error(w, "error, record id invalid", http.StatusBadRequest)
		return
	}
	if record.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &record); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update record %d: %s", record.ID, err)
		http.Error(w, "failed to update record", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateRecordResponse{UpdatedID: record.ID})
	if err != nil {
		log.Errorf("marshal update response: %s", err)
		http.Error(w, "failed to update record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, record id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete record %d: %s", id, err)
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteRecordResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete response: %s", err)
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.newWorkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Name == "" {
		http.Error(w, "error, workout name empty", http.StatusBadRequest)
		return
	}
	if workout.Duration < 0 {
		http.Error(w, "error, duration must not be negative", http.StatusBadRequest)
		return
	}

	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	addedWorkout, err := handler.repo.AddWorkout(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", workout.Name, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	addedWorkoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("marshal added workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutJson, http.StatusCreated)
}

const defaultWorkoutsListLimit = 20

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.listWorkouts")
	defer span.End()

	limit := defaultWorkoutsListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsedLimit, err := strconv.Atoi(limitParam)
		if err != nil || parsedLimit < 1 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	workouts, err := handler.repo.ListWorkouts(ctx, limit)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts list: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(workoutsJson))
}
