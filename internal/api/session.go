package api

import (
	"net/http"

	"homescan/internal/auth"
	"homescan/internal/model"
	"homescan/internal/store"
)

// SessionHandler handles session transition endpoints.
type SessionHandler struct {
	Store  *store.SessionStore
	Secret string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Session model.Session `json:"session"`
	Token   string        `json:"token,omitempty"`
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "email and password required")
		return
	}

	session, err := h.Store.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		storeError(w, err)
		return
	}

	h.respond(w, session)
}

// Signup handles POST /api/session/signup.
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "name, email and password required")
		return
	}

	session, err := h.Store.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		storeError(w, err)
		return
	}

	h.respond(w, session)
}

// Guest handles POST /api/session/guest.
func (h *SessionHandler) Guest(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.LoginAsGuest(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}

	h.respond(w, session)
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Logout(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, sessionResponse{Session: session})
}

// Current handles GET /api/session. Clients read this to decide routing;
// they never mutate the session except through the four transitions above.
func (h *SessionHandler) Current(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, sessionResponse{Session: h.Store.Current()})
}

// respond issues a token for the new session state so the client can reach
// the room and object routes.
func (h *SessionHandler) respond(w http.ResponseWriter, session model.Session) {
	var userID, name, email string
	if session.UserID != nil {
		userID = *session.UserID
	}
	if session.Name != nil {
		name = *session.Name
	}
	if session.Email != nil {
		email = *session.Email
	}

	token, err := auth.GenerateToken(h.Secret, userID, name, email, session.IsGuest)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, sessionResponse{Session: session, Token: token})
}
