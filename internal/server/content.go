package server

import (
	"net/http"
	"time"

	"aistudio/internal/analytics"
	"aistudio/internal/assistant"
	"aistudio/internal/models"
	"aistudio/internal/preview"
)

func (s *Server) handleSubmitNow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Platforms []string `json:"platforms"`
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
	posts, err := s.Engine.SubmitNow(req.Title, req.Content, platforms)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"posts": posts})
}

func (s *Server) handleSubmitSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Title     string    `json:"title"`
		Content   string    `json:"content"`
		Platforms []string  `json:"platforms"`
		At        time.Time `json:"at"`
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
	posts, err := s.Engine.SubmitSchedule(req.Title, req.Content, platforms, req.At)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"posts": posts})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ContentType string   `json:"contentType"`
		Prompt      string   `json:"prompt"`
		Platforms   []string `json:"platforms"`
		Format      string   `json:"format"`
		ImageMode   string   `json:"imageMode"`
		Creativity  int      `json:"creativity"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	contentType := models.ContentType(req.ContentType)
	if !contentType.Valid() {
		writeError(w, http.StatusBadRequest, "contentType must be text, image, or video")
		return
	}
	platforms, err := parsePlatforms(req.Platforms)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.Engine.Generate(models.Composition{
		ContentType: contentType,
		Prompt:      req.Prompt,
		Platforms:   platforms,
		Format:      req.Format,
		ImageMode:   models.ImageMode(req.ImageMode),
		Creativity:  req.Creativity,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (s *Server) handleIdeas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Topic string `json:"topic"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	result, err := s.Engine.ViralIdeas(req.Topic)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Platforms []string `json:"platforms"`
		Content   string   `json:"content"`
		Type      string   `json:"type"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	typ := models.PostType(req.Type)
	if req.Type == "" {
		typ = models.PostText
	}
	if !typ.Valid() {
		writeError(w, http.StatusBadRequest, "unknown post type")
		return
	}
	platforms, err := parsePlatforms(req.Platforms)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": preview.Render(platforms, req.Content, typ)})
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"messages": s.Chat.Messages(),
			"typing":   s.Chat.Typing(),
		})
	case http.MethodPost:
		var req struct {
			Message string `json:"message"`
		}
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}
		reply, err := s.Chat.Send(req.Message)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	days := 30
	switch r.URL.Query().Get("range") {
	case "7days":
		days = 7
	case "14days":
		days = 14
	case "30days", "":
		days = 30
	default:
		writeError(w, http.StatusBadRequest, "range must be 7days, 14days, or 30days")
		return
	}
	data := s.Analytics.LastN(days)
	writeJSON(w, http.StatusOK, map[string]any{
		"data": data,
		"changes": map[string]int{
			"likes":     analytics.ChangePercent(data, analytics.MetricLikes),
			"comments":  analytics.ChangePercent(data, analytics.MetricComments),
			"shares":    analytics.ChangePercent(data, analytics.MetricShares),
			"followers": analytics.ChangePercent(data, analytics.MetricFollowers),
		},
		"distribution": analytics.PlatformDistribution,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	posts := s.Engine.Posts()
	active := 0
	for _, p := range posts {
		if p.Status == models.StatusScheduled || p.Status == models.StatusPublished {
			active++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalPosts":  len(posts),
		"activePosts": active,
		"summary":     s.Analytics.Summarize(),
		"recent":      s.Analytics.LastN(7),
	})
}

// handleMeta describes the closed platform vocabulary so the view layer
// renders from one source of truth.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	type platformInfo struct {
		ID      models.Platform `json:"id"`
		Name    string          `json:"name"`
		Color   string          `json:"color"`
		Icon    string          `json:"icon"`
		Formats []string        `json:"formats,omitempty"`
	}
	platforms := make([]platformInfo, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		platforms = append(platforms, platformInfo{
			ID:      p,
			Name:    p.DisplayName(),
			Color:   p.Color(),
			Icon:    p.IconName(),
			Formats: p.TextFormats(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"platforms":    platforms,
		"aiModels":     models.AIModels,
		"quickPrompts": assistant.QuickPrompts,
	})
}
