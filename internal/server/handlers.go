package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.manifest)
}

// handleCatalog serves /catalog/{id}. A trailing ".json" is accepted.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSuffix(mux.Vars(r)["id"], ".json")
	id, err := catalog.ParseID(raw)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "unknown catalog "+strconv.Quote(raw))
		return
	}
	s.serveCatalog(w, r, id, 0)
}

// handleTypedCatalog serves the Stremio protocol routes
// /catalog/{type}/{id}.json and /catalog/{type}/{id}/{extra}.json.
func (s *Server) handleTypedCatalog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := catalog.ParseID(vars["id"])
	if err != nil || id.Type() != vars["type"] {
		writeError(w, r, http.StatusNotFound, "unknown catalog "+strconv.Quote(vars["type"]+"/"+vars["id"]))
		return
	}
	s.serveCatalog(w, r, id, parseSkip(vars["extra"]))
}

func (s *Server) serveCatalog(w http.ResponseWriter, r *http.Request, id catalog.ID, skip int) {
	items := s.builder.Build(r.Context(), id)
	if items == nil {
		items = []catalog.Item{}
	}
	if skip >= len(items) {
		items = []catalog.Item{}
	} else if skip > 0 {
		items = items[skip:]
	}
	writeJSON(w, r, http.StatusOK, catalog.Response{Metas: items})
}

// parseSkip reads the skip value of a Stremio extra segment such as
// "skip=20&genre=Drama". Anything unparsable counts as zero.
func parseSkip(extra string) int {
	if extra == "" {
		return 0
	}
	values, err := url.ParseQuery(extra)
	if err != nil {
		return 0
	}
	skip, err := strconv.Atoi(values.Get("skip"))
	if err != nil || skip < 0 {
		return 0
	}
	return skip
}
