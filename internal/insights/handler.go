package insights

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vmilosevic/liftinsights/internal/middleware"
	"github.com/vmilosevic/liftinsights/internal/strength"
	"github.com/vmilosevic/liftinsights/internal/telemetry/metrics"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"
	"github.com/vmilosevic/liftinsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=insights_test

type strengthAnalyzer interface {
	Analysis(ctx context.Context, userID int) (*strength.AnalysisResponse, error)
}

type narrativeService interface {
	ImbalanceNarrative(ctx context.Context, findings []strength.Finding, summary string) (string, error)
}

// single-user deployment
const defaultUserID = 1

type ImbalanceInsightsResponse struct {
	Findings     []strength.Finding `json:"findings"`
	AnyImbalance bool               `json:"anyImbalance"`
	Summary      string             `json:"summary"`
	Narrative    string             `json:"narrative"`
}

type Handler struct {
	analyzer       strengthAnalyzer
	service        narrativeService
	metricsManager *metrics.Manager
}

func NewHandler(analyzer strengthAnalyzer, service narrativeService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer:       analyzer,
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	insightsSubrouter := router.PathPrefix("/insights").Subrouter()
	insightsSubrouter.HandleFunc("/imbalances", handler.HandleImbalanceInsights).
		Methods("GET", "OPTIONS").Name("imbalance-insights")

	// completions are slow and metered, keep the endpoint rate limited
	insightsSubrouter.Use(middleware.RateLimit(rateLimiter, "insights", allowedPerMin, handler.metricsManager))
}

func (handler *Handler) HandleImbalanceInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.imbalances")
	defer span.End()

	analysis, err := handler.analyzer.Analysis(ctx, defaultUserID)
	if err != nil {
		log.Errorf("imbalance insights, analysis failed: %s", err)
		http.Error(w, "insights failed", http.StatusInternalServerError)
		return
	}

	narrative, err := handler.service.ImbalanceNarrative(ctx, analysis.Findings, analysis.Summary)
	if err != nil {
		log.Errorf("imbalance insights, narrative failed: %s", err)
		http.Error(w, "insights narrative unavailable", http.StatusBadGateway)
		return
	}

	handler.metricsManager.CounterInsights.Inc()

	respJson, err := json.Marshal(ImbalanceInsightsResponse{
		Findings:     analysis.Findings,
		AnyImbalance: analysis.AnyImbalance,
		Summary:      analysis.Summary,
		Narrative:    narrative,
	})
	if err != nil {
		log.Errorf("marshal insights response: %s", err)
		http.Error(w, "insights failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}
