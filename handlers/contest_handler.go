package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/services"
)

type ContestHandler struct {
	contestService services.ContestService
}

func NewContestHandler(cs services.ContestService) *ContestHandler {
	return &ContestHandler{contestService: cs}
}

func (h *ContestHandler) ListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.contestService.ListContests(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, contests)
}

func (h *ContestHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	contest, err := h.contestService.GetContest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, contest)
}

// GetContestByNumber looks a contest up by the Codeforces contestId query parameter.
func (h *ContestHandler) GetContestByNumber(w http.ResponseWriter, r *http.Request) {
	contestID, err := contestIDFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	contest, err := h.contestService.GetContestByNumber(r.Context(), contestID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, contest)
}

func (h *ContestHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	contest, err := readDocument(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.contestService.CreateContest(r.Context(), contest)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ContestHandler) UpdateContest(w http.ResponseWriter, r *http.Request) {
	body, err := readUpdate(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.contestService.UpdateContest(r.Context(), chi.URLParam(r, "id"), models.ContestFieldsFrom(body))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ContestHandler) DeleteContest(w http.ResponseWriter, r *http.Request) {
	res, err := h.contestService.DeleteContest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}
