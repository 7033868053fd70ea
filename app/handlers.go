package app

import (
	"net/http"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib"
	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/go-chi/chi/v5"
)

func (ctrl *controller) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		ctrl.reject(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if _, err := ctrl.svc.Register(r.Context(), req.Username, req.Password); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{"message": "User registered successfully!"})
}

func (ctrl *controller) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		ctrl.reject(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, session, err := ctrl.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{
		"message":  "Login successful!",
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"token":    session.Token,
	})
}

func (ctrl *controller) saveAnimeList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    uint                    `json:"userId"`
		AnimeList []models.WatchlistEntry `json:"animeList"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.UserID == 0 {
		ctrl.reject(w, http.StatusBadRequest, "User ID is required.")
		return
	}

	if err := ctrl.svc.SaveList(r.Context(), req.UserID, req.AnimeList); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"message": "Anime list saved successfully!"})
}

func (ctrl *controller) getAnimeList(w http.ResponseWriter, r *http.Request) {
	userID := parseUint(chi.URLParam(r, "user_id"))

	entries, err := ctrl.svc.List(r.Context(), userID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"animeList": entries})
}

func (ctrl *controller) analytics(w http.ResponseWriter, r *http.Request) {
	userID := parseUint(chi.URLParam(r, "user_id"))

	stats, err := ctrl.svc.Analytics(r.Context(), userID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, stats)
}

func (ctrl *controller) listReviews(w http.ResponseWriter, r *http.Request) {
	animeID := parseInt(chi.URLParam(r, "anime_id"))

	rows, err := ctrl.svc.ListReviews(r.Context(), animeID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"reviews": FromMany[models.ReviewWithAuthor, ReviewView](rows)})
}

func (ctrl *controller) createReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AnimeID    int    `json:"animeId"`
		UserID     uint   `json:"userId"`
		Rating     int    `json:"rating"`
		ReviewText string `json:"reviewText"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.AnimeID == 0 || req.UserID == 0 || req.Rating == 0 {
		ctrl.reject(w, http.StatusBadRequest, "Anime ID, user ID, and rating are required.")
		return
	}

	review, err := ctrl.svc.CreateReview(r.Context(), req.AnimeID, req.UserID, req.Rating, req.ReviewText)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{
		"message": "Review submitted successfully!",
		"review":  ReviewView{}.From(&models.ReviewWithAuthor{Review: *review}),
	})
}

func (ctrl *controller) createReminder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID          uint `json:"userId"`
		AnimeID         int  `json:"animeId"`
		CurrentEpisodes *int `json:"currentEpisodes"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.UserID == 0 || req.AnimeID == 0 || req.CurrentEpisodes == nil {
		ctrl.reject(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if _, err := ctrl.svc.Subscribe(r.Context(), req.UserID, req.AnimeID, *req.CurrentEpisodes); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{"message": "Reminder subscribed successfully!"})
}

func (ctrl *controller) listReminders(w http.ResponseWriter, r *http.Request) {
	userID := parseUint(chi.URLParam(r, "user_id"))

	ids, err := ctrl.svc.SubscribedAnimeIDs(r.Context(), userID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"subscribedAnimeIds": ids})
}

func (ctrl *controller) genres(w http.ResponseWriter, r *http.Request) {
	genres, err := ctrl.svc.Genres(r.Context())
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"genres": genres})
}

func (ctrl *controller) searchCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		ctrl.reject(w, http.StatusBadRequest, "Search query is required.")
		return
	}

	results, err := ctrl.svc.SearchCatalog(r.Context(), query)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"results": results})
}

func (ctrl *controller) animeDetail(w http.ResponseWriter, r *http.Request) {
	animeID := parseInt(chi.URLParam(r, "anime_id"))

	anime, err := ctrl.svc.AnimeDetail(r.Context(), animeID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"anime": anime})
}

func (ctrl *controller) listClubs(w http.ResponseWriter, r *http.Request) {
	all, err := ctrl.svc.ListClubs(r.Context())
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"clubs": FromMany[models.Club, ClubView](all)})
}

func (ctrl *controller) createClub(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CreatedBy   uint   `json:"created_by"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.CreatedBy == 0 {
		ctrl.reject(w, http.StatusBadRequest, "Club name and creator are required.")
		return
	}

	club, err := ctrl.svc.CreateClub(r.Context(), req.Name, req.Description, req.CreatedBy)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{
		"message": "Club created successfully!",
		"club":    ClubView{}.From(club),
	})
}

func (ctrl *controller) getClub(w http.ResponseWriter, r *http.Request) {
	clubID := parseUint(chi.URLParam(r, "club_id"))

	club, err := ctrl.svc.GetClub(r.Context(), clubID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"club": ClubView{}.From(club)})
}

func (ctrl *controller) listDiscussions(w http.ResponseWriter, r *http.Request) {
	clubID := parseUint(chi.URLParam(r, "club_id"))

	rows, err := ctrl.svc.ListDiscussions(r.Context(), clubID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"discussions": FromMany[models.DiscussionWithAuthor, DiscussionView](rows)})
}

func (ctrl *controller) postDiscussion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClubID  uint   `json:"club_id"`
		UserID  uint   `json:"user_id"`
		Content string `json:"content"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.ClubID == 0 || req.UserID == 0 || req.Content == "" {
		ctrl.reject(w, http.StatusBadRequest, "Club ID, user ID, and content are required.")
		return
	}

	msg, err := ctrl.svc.PostDiscussion(r.Context(), req.ClubID, req.UserID, req.Content)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{
		"discussion": DiscussionView{}.From(&models.DiscussionWithAuthor{Discussion: *msg}),
	})
}

func (ctrl *controller) listPolls(w http.ResponseWriter, r *http.Request) {
	clubID := parseUint(chi.URLParam(r, "club_id"))

	all, err := ctrl.svc.ListPolls(r.Context(), clubID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	views := make([]PollView, len(all))
	for i, p := range all {
		views[i] = PollView{}.FromTallied(&p)
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"polls": views})
}

func (ctrl *controller) createPoll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClubID    uint     `json:"club_id"`
		Question  string   `json:"question"`
		Options   []string `json:"options"`
		CreatedBy uint     `json:"created_by"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.ClubID == 0 || req.Question == "" || req.CreatedBy == 0 {
		ctrl.reject(w, http.StatusBadRequest, "Club ID, question, and creator are required.")
		return
	}

	poll, err := ctrl.svc.CreatePoll(r.Context(), req.ClubID, req.Question, req.Options, req.CreatedBy)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{
		"message": "Poll created successfully!",
		"poll":    PollView{}.FromTallied(&lib.PollWithTallies{Poll: *poll}),
	})
}

func (ctrl *controller) vote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PollID   uint `json:"poll_id"`
		UserID   uint `json:"user_id"`
		OptionID uint `json:"option_id"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.PollID == 0 || req.UserID == 0 || req.OptionID == 0 {
		ctrl.reject(w, http.StatusBadRequest, "Poll ID, user ID, and option ID are required.")
		return
	}

	if _, err := ctrl.svc.Vote(r.Context(), req.PollID, req.UserID, req.OptionID); err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusCreated, map[string]any{"message": "Vote submitted successfully!"})
}

func (ctrl *controller) listVotes(w http.ResponseWriter, r *http.Request) {
	userID := parseUint(chi.URLParam(r, "user_id"))

	votes, err := ctrl.svc.UserVotes(r.Context(), userID)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"votes": FromMany[models.Vote, VoteView](votes)})
}

func (ctrl *controller) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !ctrl.decode(w, r, &req) {
		return
	}
	if req.Message == "" {
		ctrl.reject(w, http.StatusBadRequest, "Message is required.")
		return
	}

	reply, err := ctrl.svc.Chat(r.Context(), req.Message)
	if err != nil {
		ctrl.fail(w, err)
		return
	}
	ctrl.resolve(w, http.StatusOK, map[string]any{"reply": reply})
}
