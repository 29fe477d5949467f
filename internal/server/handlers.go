package server

import (
	"errors"
	"net/http"
	"time"

	"aistudio/internal/models"
	"aistudio/internal/session"
	"aistudio/internal/store"
	"aistudio/internal/workflow"
)

// statusFor maps core errors onto HTTP status codes. Everything in the core
// is recoverable; nothing here maps to a fatal class.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, workflow.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrGenerationInFlight),
		errors.Is(err, workflow.ErrSubmitInFlight):
		return http.StatusTooManyRequests
	case errors.Is(err, workflow.ErrContentRequired),
		errors.Is(err, workflow.ErrPlatformRequired),
		errors.Is(err, workflow.ErrPromptRequired),
		errors.Is(err, workflow.ErrTopicRequired),
		errors.Is(err, workflow.ErrTimeRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := s.Sessions.Login(req.Email, req.Password); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	user, _ := s.Sessions.Current()
	writeJSON(w, http.StatusOK, map[string]any{"user": user, "redirect": "/dashboard"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	if err := s.Sessions.Signup(req.Name, req.Email, req.Password); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	user, _ := s.Sessions.Current()
	writeJSON(w, http.StatusCreated, map[string]any{"user": user, "redirect": "/dashboard"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := s.Sessions.Logout(); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"redirect": "/login"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.Sessions.Current()
	resp := map[string]any{
		"isLoading":       s.Sessions.IsLoading(),
		"isAuthenticated": ok,
	}
	if ok {
		resp["user"] = user
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	if err := s.Sessions.UpdateProfile(req.Name, req.Email); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	user, _ := s.Sessions.Current()
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// handlePosts lists the catalog (GET, with optional conjunctive status and
// platform filters) or creates posts (POST, as draft or pending).
func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		posts := s.Engine.Filter(r.URL.Query().Get("status"), r.URL.Query().Get("platform"))
		writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
	case http.MethodPost:
		var req struct {
			Title     string   `json:"title"`
			Content   string   `json:"content"`
			Platforms []string `json:"platforms"`
			Status    string   `json:"status"`
		}
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}
		platforms, err := parsePlatforms(req.Platforms)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var posts []models.Post
		switch models.PostStatus(req.Status) {
		case models.StatusPending:
			posts, err = s.Engine.CreatePending(req.Title, req.Content, platforms)
		case models.StatusDraft, "":
			posts, err = s.Engine.CreateDraft(req.Title, req.Content, platforms)
		default:
			writeError(w, http.StatusBadRequest, "posts are created as draft or pending")
			return
		}
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"posts": posts})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handlePostsOn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": s.Engine.PostsOn(date)})
}

func (s *Server) postAction(w http.ResponseWriter, r *http.Request, action func(id string) error) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := decode(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "post id required")
		return
	}
	if err := action(req.ID); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	post, err := s.Engine.Get(req.ID)
	if err != nil {
		// Deleted posts have nothing left to return.
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	s.postAction(w, r, s.Engine.Approve)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.postAction(w, r, s.Engine.Reject)
}

func (s *Server) handlePublishNow(w http.ResponseWriter, r *http.Request) {
	s.postAction(w, r, s.Engine.PublishNow)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.postAction(w, r, s.Engine.Delete)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID string    `json:"id"`
		At time.Time `json:"at"`
	}
	if err := decode(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "post id required")
		return
	}
	if err := s.Engine.Schedule(req.ID, req.At); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	post, _ := s.Engine.Get(req.ID)
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}
