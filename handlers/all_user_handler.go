package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/response"
	"github.com/xpsc-club/xpsc-server/services"
)

type AllUserHandler struct {
	userService services.AllUserService
}

func NewAllUserHandler(us services.AllUserService) *AllUserHandler {
	return &AllUserHandler{userService: us}
}

func (h *AllUserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, users)
}

func (h *AllUserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := h.userService.IsAdmin(r.Context(), email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, response.Envelope{"admin": isAdmin})
}

func (h *AllUserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, user)
}

func (h *AllUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, err := readDocument(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.userService.CreateUser(r.Context(), user)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *AllUserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	body, err := readUpdate(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.userService.UpdateUser(r.Context(), chi.URLParam(r, "id"), models.AllUserFieldsFrom(body))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}

func (h *AllUserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, res)
}
