package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"
	"github.com/vmilosevic/liftinsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Upsert(ctx context.Context, prof Profile) (*Profile, error)
}

// single-user deployment
const defaultUserID = 1

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", handler.HandleUpsert).
		Methods("POST", "OPTIONS").Name("upsert-profile")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	prof, err := handler.repo.Get(ctx, defaultUserID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profJson, err := json.Marshal(prof)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(profJson))
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var prof Profile
	if err := json.NewDecoder(r.Body).Decode(&prof); err != nil {
		log.Tracef("upsert profile, unmarshal json params: %s", err)
		http.Error(w, "upsert profile failed", http.StatusBadRequest)
		return
	}

	if prof.ID == 0 {
		prof.ID = defaultUserID
	}

	if prof.WeightValue != nil && *prof.WeightValue <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}
	if prof.SkeletalMuscleMassValue != nil && *prof.SkeletalMuscleMassValue <= 0 {
		http.Error(w, "error, muscle mass must be positive", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Upsert(ctx, prof)
	if err != nil {
		log.Errorf("failed to upsert profile: %s", err)
		http.Error(w, "failed to upsert profile", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "failed to upsert profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updatedJson))
}
