package middleware

import (
	"net/http"
	"strings"

	"github.com/vmilosevic/liftinsights/internal/auth"
	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	mobileAppSecret string
	loginChecker    auth.Checker
	allowedPaths    map[string]bool
}

func NewAuthMiddlewareHandler(
	mobileAppSecret string,
	loginChecker auth.Checker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		mobileAppSecret: mobileAppSecret,
		loginChecker:    loginChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/login":  true,
			"/a/logout": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// the mobile app sends its own shared secret
			if authHeader := r.Header.Get("Authorization"); authHeader != "" &&
				h.mobileAppSecret != "" && authHeader == h.mobileAppSecret {
				span.SetStatus(codes.Ok, "ok-mobile-app")
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(r.Header.Get("X-LIFT-TOKEN"))
			if token == "" {
				span.SetStatus(codes.Error, "no-token")
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			logged, err := h.loginChecker.IsLogged(ctx, token)
			if err != nil {
				log.Tracef("[failed login check] => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "login-check-failed")
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			if !logged {
				span.SetStatus(codes.Error, "not-logged")
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
