package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/response"
	"github.com/xpsc-club/xpsc-server/services"
)

const maxImageBytes = 10 << 20

type ClubUserHandler struct {
	memberService services.ClubUserService
}

func NewClubUserHandler(ms services.ClubUserService) *ClubUserHandler {
	return &ClubUserHandler{memberService: ms}
}

func (h *ClubUserHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, members)
}

func (h *ClubUserHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, member)
}

func (h *ClubUserHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	member, err := readDocument(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.memberService.CreateMember(r.Context(), member)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ClubUserHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	body, err := readUpdate(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.memberService.UpdateMember(r.Context(), chi.URLParam(r, "id"), models.ClubUserFieldsFrom(body))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ClubUserHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	res, err := h.memberService.DeleteMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *ClubUserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	members, err := h.memberService.Leaderboard(r.Context(), page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, members)
}

func (h *ClubUserHandler) CountMembers(w http.ResponseWriter, r *http.Request) {
	n, err := h.memberService.CountMembers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, models.CountResult{Result: n})
}

// UploadImage expects a multipart form with the file in the "image" field.
func (h *ClubUserHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content type required"))
		return
	}

	location, res, err := h.memberService.UploadImage(r.Context(), chi.URLParam(r, "id"), file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, response.Envelope{"image": location, "result": res})
}
