package strength

import (
	"encoding/json"
	"net/http"

	"github.com/vmilosevic/liftinsights/internal/telemetry/metrics"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"
	"github.com/vmilosevic/liftinsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// single-user deployment, the profile and records tables hold one user
const defaultUserID = 1

type Handler struct {
	analyzer       *Analyzer
	metricsManager *metrics.Manager
}

func NewHandler(analyzer *Analyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer:       analyzer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/strength/analysis", handler.HandleAnalysis).
		Methods("GET", "OPTIONS").Name("strength-analysis")
	router.HandleFunc("/strength/exercise/{name}/status", handler.HandleExerciseStatus).
		Methods("GET", "OPTIONS").Name("strength-exercise-status")
}

func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.analysis")
	defer span.End()

	analysis, err := handler.analyzer.Analysis(ctx, defaultUserID)
	if err != nil {
		log.Errorf("strength analysis failed: %s", err)
		http.Error(w, "strength analysis failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterAnalysesRun.Inc()

	analysisJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("marshal strength analysis: %s", err)
		http.Error(w, "strength analysis failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(analysisJson))
}

func (handler *Handler) HandleExerciseStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.exerciseStatus")
	defer span.End()

	vars := mux.Vars(r)
	exerciseName := vars["name"]
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	outputUnit := WeightUnit(r.URL.Query().Get("unit"))

	status, err := handler.analyzer.ExerciseStatus(ctx, defaultUserID, exerciseName, outputUnit)
	if err != nil {
		log.Errorf("exercise status for [%s] failed: %s", exerciseName, err)
		http.Error(w, "exercise status failed", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("marshal exercise status: %s", err)
		http.Error(w, "exercise status failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(statusJson))
}
