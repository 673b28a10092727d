package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/router"
	"github.com/ziadkadry99/folio/internal/view"
)

// routeResponse describes how a fragment resolves.
type routeResponse struct {
	Fragment string `json:"fragment"`
	Route    string `json:"route"`
	Title    string `json:"title"`
}

// handleRender draws the document for one fragment. Each toggle parameter
// flips that item's abstract away from its default.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, renderer := s.current()
	if c == nil {
		writeError(w, http.StatusServiceUnavailable, "no content loaded")
		return
	}

	session := renderer.NewSession(c)
	session.Navigate(q.Get("fragment"))
	for _, key := range q["toggle"] {
		session.Toggle(view.ItemKey(key))
	}

	var buf bytes.Buffer
	if err := session.Render(&buf); err != nil {
		s.logger.Error("render failed", zap.String("fragment", session.Fragment()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	state := router.NewState(r.URL.Query().Get("fragment"))
	route := state.Route()
	writeJSON(w, http.StatusOK, routeResponse{
		Fragment: state.Fragment(),
		Route:    route.String(),
		Title:    route.Title(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
