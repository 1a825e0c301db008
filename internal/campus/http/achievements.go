package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// AchievementsHandler handles the achievement endpoints.
type AchievementsHandler struct {
	AchievementService *service.AchievementService
}

// HandleList handles GET /api/achievements
//
//	@Summary		List achievements
//	@Description	Lists achievements by date, newest first. Every filter is optional.
//	@Tags			Achievements
//	@Produce		json
//	@Param			type		query		string					false	"e.g. student or faculty"
//	@Param			department	query		string					false	"Department code"
//	@Param			category	query		string					false	"Category"
//	@Success		200			{array}		campussdk.Achievement	"achievements"
//	@Failure		400			{object}	httpx.ErrorBody			"validation_error"
//	@Router			/api/achievements [get].
func (h *AchievementsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.AchievementService.ListAchievements(r.Context(), service.AchievementQuery{
		Type:       q.Get("type"),
		Department: q.Get("department"),
		Category:   q.Get("category"),
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to list achievements")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAchievements(list))
}

// HandleGet handles GET /api/achievements/{id}
//
//	@Summary		Get achievement
//	@Tags			Achievements
//	@Produce		json
//	@Param			id	path		string					true	"Achievement ID"
//	@Success		200	{object}	campussdk.Achievement	"achievement"
//	@Failure		404	{object}	httpx.ErrorBody			"not_found"
//	@Router			/api/achievements/{id} [get].
func (h *AchievementsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.AchievementService.GetAchievement(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load achievement")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAchievement(a))
}

// HandleCreate handles POST /api/achievements
//
//	@Summary		Record achievement
//	@Tags			Achievements
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.CreateAchievementRequest	true	"Achievement"
//	@Success		201		{object}	campussdk.Achievement				"created achievement"
//	@Failure		400		{object}	httpx.ErrorBody						"validation_error"
//	@Failure		401		{object}	httpx.ErrorBody						"invalid_token"
//	@Failure		403		{object}	httpx.ErrorBody						"insufficient_scope"
//	@Router			/api/achievements [post].
func (h *AchievementsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req campussdk.CreateAchievementRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	a, err := h.AchievementService.CreateAchievement(r.Context(), principal(r), service.CreateAchievementInput{
		Name:        req.Name,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Department:  req.Department,
		DocumentURL: req.DocumentURL,
		Type:        req.Type,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to record achievement")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAchievement(a))
}
