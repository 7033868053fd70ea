package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/config"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const serverErrorMessage = "Server error. Please try again later."

func NewAPI(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, svc *lib.Service) *http.Server {
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{Addr: addr, Handler: router(cfg, log, svc)}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go srv.ListenAndServe()
			return nil
		},
		OnStop: srv.Shutdown,
	})

	return srv
}

func router(cfg *config.Config, log *zap.Logger, svc *lib.Service) http.Handler {
	ctrl := &controller{log, svc}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", ctrl.register)
		r.Post("/login", ctrl.login)

		r.Post("/anime", ctrl.saveAnimeList)
		r.Get("/anime/{user_id}", ctrl.getAnimeList)
		r.Get("/analytics/{user_id}", ctrl.analytics)

		r.Get("/reviews/{anime_id}", ctrl.listReviews)
		r.Post("/reviews", ctrl.createReview)

		r.Post("/reminders", ctrl.createReminder)
		r.Get("/reminders/{user_id}", ctrl.listReminders)

		r.Get("/genres", ctrl.genres)
		r.Get("/catalog/search", ctrl.searchCatalog)
		r.Get("/catalog/anime/{anime_id}", ctrl.animeDetail)

		r.Get("/clubs", ctrl.listClubs)
		r.Post("/clubs", ctrl.createClub)
		r.Get("/clubs/{club_id}", ctrl.getClub)
		r.Get("/discussions/{club_id}", ctrl.listDiscussions)
		r.Post("/discussions", ctrl.postDiscussion)
		r.Get("/polls/{club_id}", ctrl.listPolls)
		r.Post("/polls", ctrl.createPoll)
		r.Post("/votes", ctrl.vote)
		r.Get("/votes/{user_id}", ctrl.listVotes)

		r.Post("/chat", ctrl.chat)

		r.Route("/admin", func(r chi.Router) {
			r.Use(ctrl.requireAdmin)
			r.Get("/users", ctrl.adminListUsers)
			r.Delete("/users/{id}", ctrl.adminDeleteUser)
			r.Get("/clubs", ctrl.adminListClubs)
			r.Delete("/clubs/{id}", ctrl.adminDeleteClub)
			r.Get("/reviews", ctrl.adminListReviews)
			r.Delete("/reviews/{id}", ctrl.adminDeleteReview)
		})
	})

	return r
}

type controller struct {
	log *zap.Logger
	svc *lib.Service
}

func (ctrl *controller) reject(w http.ResponseWriter, status int, message string) {
	ctrl.resolve(w, status, map[string]any{"message": message})
}

func (ctrl *controller) resolve(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		ctrl.log.Sugar().Errorw("Failed to encode response", "err", err)
		http.Error(w, serverErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// fail maps domain errors onto the status taxonomy: 409 conflicts, 401/403
// auth, 404 unknown ids, 400 validation, and a generic 500 for the rest with
// detail kept in the log.
func (ctrl *controller) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lib.ErrUsernameTaken),
		errors.Is(err, lib.ErrAlreadySubscribed),
		errors.Is(err, lib.ErrAlreadyVoted):
		ctrl.reject(w, http.StatusConflict, capitalize(err.Error()))

	case errors.Is(err, lib.ErrInvalidCredentials),
		errors.Is(err, lib.ErrInvalidSession):
		ctrl.reject(w, http.StatusUnauthorized, capitalize(err.Error()))

	case errors.Is(err, lib.ErrNotFound):
		ctrl.reject(w, http.StatusNotFound, "Not found.")

	case errors.Is(err, lib.ErrTooFewOptions),
		errors.Is(err, lib.ErrTooManyOptions),
		errors.Is(err, lib.ErrInvalidRating),
		errors.Is(err, lib.ErrInvalidCategory):
		ctrl.reject(w, http.StatusBadRequest, capitalize(err.Error()))

	default:
		ctrl.log.Sugar().Errorw("Request failed", "err", err)
		ctrl.reject(w, http.StatusInternalServerError, serverErrorMessage)
	}
}

func (ctrl *controller) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		ctrl.reject(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}

// requireAdmin authenticates the bearer session token and requires the
// administrator flag on the account behind it.
func (ctrl *controller) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			ctrl.reject(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		user, err := ctrl.svc.SessionUser(r.Context(), token)
		if err != nil {
			ctrl.fail(w, err)
			return
		}
		if !user.IsAdmin {
			ctrl.reject(w, http.StatusForbidden, "Access denied.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func parseUint(s string) uint {
	u, _ := strconv.ParseUint(s, 10, 64)
	return uint(u)
}

func parseInt(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
