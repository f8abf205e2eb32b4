package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type classifyResponse struct {
	Key    string `json:"key"`
	Family string `json:"family"`
}

// handleClassify handles GET /classify?key=<metric key>.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "missing key query parameter")
		return
	}

	family := s.deps.Classify(r.Context(), key)
	render.JSON(w, r, classifyResponse{Key: key, Family: string(family)})
}
