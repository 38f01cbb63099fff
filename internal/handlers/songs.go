package handlers

import (
	"errors"
	"net/http"

	"github.com/NizCom/JaMoveo-backend/internal/catalog"
	"github.com/NizCom/JaMoveo-backend/internal/models"
	"github.com/NizCom/JaMoveo-backend/internal/session"
)

// SongHandler serves catalog search, exact song retrieval, and the current
// live song for late joiners.
type SongHandler struct {
	catalog *catalog.Catalog
	state   *session.State
}

// NewSongHandler creates a SongHandler with the required dependencies.
func NewSongHandler(c *catalog.Catalog, state *session.State) *SongHandler {
	return &SongHandler{catalog: c, state: state}
}

// Search lists every song whose name contains the query, case-insensitively.
func (h *SongHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	songs, err := h.catalog.Search(name)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "Song name parameter is required")
			return
		}
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "Failed to read songs", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SearchSongsResponse{
		SearchTerm: name,
		Count:      len(songs),
		Songs:      songs,
	})
}

// Get resolves one song by exact name match and returns its lyrics/chords view.
func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	song, err := h.catalog.Resolve(name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyQuery):
			writeError(w, http.StatusBadRequest, "Song name parameter is required")
		case errors.Is(err, catalog.ErrNotFound):
			writeError(w, http.StatusNotFound, "Song not found")
		default:
			writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "Failed to fetch song", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, models.SongResponse{Song: song})
}

// CurrentLive returns the song currently broadcast live, or a null song when
// the session is idle. Idle is not an error: it is the normal state between
// rehearsal numbers.
func (h *SongHandler) CurrentLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SongResponse{Song: h.state.Current()})
}
