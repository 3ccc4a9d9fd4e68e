package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/services"
)

type ContestResultHandler struct {
	resultService services.ContestResultService
}

func NewContestResultHandler(rs services.ContestResultService) *ContestResultHandler {
	return &ContestResultHandler{resultService: rs}
}

func (h *ContestResultHandler) CountParticipants(w http.ResponseWriter, r *http.Request) {
	p := models.Participated
	h.count(w, r, &p)
}

func (h *ContestResultHandler) CountNonParticipants(w http.ResponseWriter, r *http.Request) {
	p := models.DidNotParticipate
	h.count(w, r, &p)
}

func (h *ContestResultHandler) CountAll(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, nil)
}

func (h *ContestResultHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.Participated)
}

func (h *ContestResultHandler) ListNonParticipants(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.DidNotParticipate)
}

func (h *ContestResultHandler) count(w http.ResponseWriter, r *http.Request, participation *models.Participation) {
	contestID, err := contestIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	n, err := h.resultService.CountResults(r.Context(), contestID, participation)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, models.CountResult{Result: n})
}

func (h *ContestResultHandler) list(w http.ResponseWriter, r *http.Request, participation models.Participation) {
	contestID, err := contestIDFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	page, err := pageFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.resultService.ListResults(r.Context(), contestID, participation, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, results)
}

func (h *ContestResultHandler) GetUserResult(w http.ResponseWriter, r *http.Request) {
	contestID, err := contestIDFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.GetUserResult(r.Context(), contestID, r.URL.Query().Get("codeforcesHandle"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, result)
}

func (h *ContestResultHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	result, err := readDocument(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.resultService.CreateResult(r.Context(), result)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ContestResultHandler) DeleteContestResults(w http.ResponseWriter, r *http.Request) {
	contestID, err := contestIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.resultService.DeleteContestResults(r.Context(), contestID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ContestResultHandler) DeleteUserResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.resultService.DeleteUserResults(r.Context(), chi.URLParam(r, "codeforcesHandle"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}
