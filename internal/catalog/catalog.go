// Package catalog locates song documents by name and derives the
// line-aligned lyrics/chords view the live page renders.
package catalog

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/NizCom/JaMoveo-backend/internal/models"
)

var (
	// ErrEmptyQuery signals a missing or empty search/lookup term.
	ErrEmptyQuery = errors.New("catalog: empty query")
	// ErrNotFound signals that no identifier matches an exact lookup.
	ErrNotFound = errors.New("catalog: song not found")
	// ErrMalformed signals that a specifically requested document failed to parse.
	ErrMalformed = errors.New("catalog: malformed song document")
)

// Catalog resolves songs against a Store.
type Catalog struct {
	store Store
}

// New creates a Catalog backed by the given store.
func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// Search returns an entry for every song whose identifier contains query,
// case-insensitively. A document that fails to parse is logged and skipped
// so one bad file never empties the whole listing.
func (c *Catalog) Search(query string) ([]models.CatalogEntry, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ids, err := c.store.Enumerate()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	songs := []models.CatalogEntry{}
	for _, id := range ids {
		if !strings.Contains(strings.ToLower(id), needle) {
			continue
		}

		data, err := c.store.Read(id)
		if err != nil {
			slog.Warn("skipping unreadable song document", slog.String("song", id), slog.Any("error", err))
			continue
		}
		doc, err := ParseDocument(data)
		if err != nil {
			slog.Warn("skipping malformed song document", slog.String("song", id), slog.Any("error", err))
			continue
		}

		songs = append(songs, models.CatalogEntry{
			SongName: DisplayName(id),
			Artist:   doc.ArtistOrNil(),
			Image:    doc.ImageOrNil(),
		})
	}
	return songs, nil
}

// Resolve finds the single song whose identifier matches name exactly after
// normalization (lowercase, underscores equivalent to spaces) and returns its
// rendering-ready form. A parse failure here is a hard error: the caller
// asked for exactly this document.
func (c *Catalog) Resolve(name string) (*models.Song, error) {
	if name == "" {
		return nil, ErrEmptyQuery
	}

	ids, err := c.store.Enumerate()
	if err != nil {
		return nil, err
	}

	want := normalizeName(name)
	var match string
	found := false
	for _, id := range ids {
		if normalizeName(id) == want {
			match = id
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	data, err := c.store.Read(match)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	lyrics, chords := Extract(doc)
	return &models.Song{
		SongName: match,
		Artist:   doc.ArtistOrNil(),
		Image:    doc.ImageOrNil(),
		Lyrics:   lyrics,
		Chords:   chords,
	}, nil
}

// DisplayName converts an identifier to its human-readable form.
func DisplayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}
