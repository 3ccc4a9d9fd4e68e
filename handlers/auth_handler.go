package handlers

import (
	"fmt"
	"net/http"

	"github.com/xpsc-club/xpsc-server/response"
	"github.com/xpsc-club/xpsc-server/services"
)

type AuthHandler struct {
	tokens services.TokenService
}

func NewAuthHandler(tokens services.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs whatever identity payload the frontend submits.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := readJSON(w, r, &payload); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to issue token: %w", err))
		return
	}

	respond(w, r, response.Envelope{"token": token})
}
