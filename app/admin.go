package app

import (
	"net/http"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/go-chi/chi/v5"
)

func (ctrl *controller) adminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ctrl.svc.ListUsers(r.Context())
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"users": FromMany[models.User, UserView](users)})
}

func (ctrl *controller) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := parseUint(chi.URLParam(r, "id"))

	if err := ctrl.svc.DeleteUser(r.Context(), id); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"message": "User deleted successfully."})
}

func (ctrl *controller) adminListClubs(w http.ResponseWriter, r *http.Request) {
	all, err := ctrl.svc.ListClubs(r.Context())
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"clubs": FromMany[models.Club, ClubView](all)})
}

func (ctrl *controller) adminDeleteClub(w http.ResponseWriter, r *http.Request) {
	id := parseUint(chi.URLParam(r, "id"))

	if err := ctrl.svc.DeleteClub(r.Context(), id); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"message": "Club deleted successfully."})
}

func (ctrl *controller) adminListReviews(w http.ResponseWriter, r *http.Request) {
	rows, err := ctrl.svc.ListAllReviews(r.Context())
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"reviews": FromMany[models.ReviewWithAuthor, ReviewView](rows)})
}

func (ctrl *controller) adminDeleteReview(w http.ResponseWriter, r *http.Request) {
	id := parseUint(chi.URLParam(r, "id"))

	if err := ctrl.svc.DeleteReview(r.Context(), id); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"message": "Review deleted successfully."})
}
