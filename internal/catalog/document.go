package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LineEntry is one position in a section: a fragment of lyrics and the chord
// played over it. Either field may be absent.
type LineEntry struct {
	Lyrics string `json:"lyrics"`
	Chords string `json:"chords"`
}

// Document is a parsed song file: ordered sections of line entries plus
// optional metadata. Song files come in two shapes — a bare JSON array of
// sections, or an object carrying metadata alongside a "sections" array.
type Document struct {
	Artist    string `json:"artist"`
	Performer string `json:"performer"`
	Image     string `json:"image"`
	Artwork   string `json:"artwork"`
	Cover     string `json:"cover"`

	Sections [][]LineEntry `json:"sections"`
}

// ParseDocument decodes a raw song file into a Document.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sections [][]LineEntry
		if err := json.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("catalog: decode sections: %w", err)
		}
		return &Document{Sections: sections}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode document: %w", err)
	}
	return &doc, nil
}

// ArtistOrNil returns the document's artist with the performer field as
// fallback, or nil when neither is set.
func (d *Document) ArtistOrNil() *string {
	return firstNonEmpty(d.Artist, d.Performer)
}

// ImageOrNil returns the document's image with artwork and cover as
// fallbacks, or nil when none is set.
func (d *Document) ImageOrNil() *string {
	return firstNonEmpty(d.Image, d.Artwork, d.Cover)
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}

// Extract flattens the document's sections into two parallel slices: lyrics
// and chords for every line entry, in section order. Missing fields become
// empty strings, so both slices always have one element per line entry.
func Extract(doc *Document) (lyrics, chords []string) {
	total := 0
	for _, section := range doc.Sections {
		total += len(section)
	}
	lyrics = make([]string, 0, total)
	chords = make([]string, 0, total)
	for _, section := range doc.Sections {
		for _, entry := range section {
			lyrics = append(lyrics, entry.Lyrics)
			chords = append(chords, entry.Chords)
		}
	}
	return lyrics, chords
}
