package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeSongs populates a temp songs directory and returns a Catalog over it.
func writeSongs(t *testing.T, files map[string]string) *Catalog {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	store, err := NewFSStore(dir)
	if err != nil {
		t.Fatalf("NewFSStore() error = %v", err)
	}
	return New(store)
}

const validSong = `{"artist":"Traditional","sections":[[{"lyrics":"Amazing grace","chords":"G"}]]}`

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"amazing_grace.json":      validSong,
		"amazing_grace_live.json": validSong,
		"hey_jude.json":           validSong,
		"notes.txt":               "not a song",
	})

	tests := []struct {
		query string
		want  int
	}{
		{"grace", 2},
		{"GRACE", 2},
		{"Amazing_Grace", 2},
		{"jude", 1},
		{"zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			songs, err := c.Search(tt.query)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			if len(songs) != tt.want {
				t.Errorf("Search(%q) returned %d songs, want %d", tt.query, len(songs), tt.want)
			}
		})
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	c := writeSongs(t, map[string]string{"hey_jude.json": validSong})

	if _, err := c.Search(""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Search(\"\") error = %v, want ErrEmptyQuery", err)
	}
}

func TestSearch_SkipsMalformedDocuments(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"good_song.json":   validSong,
		"broken_song.json": `{not json`,
	})

	songs, err := c.Search("song")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(songs) != 1 {
		t.Fatalf("Search() returned %d songs, want 1 (malformed skipped)", len(songs))
	}
	if songs[0].SongName != "good song" {
		t.Errorf("SongName = %q, want %q", songs[0].SongName, "good song")
	}
}

func TestSearch_DisplayNameAndMetadata(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"hey_jude.json": `{"performer":"The Beatles","artwork":"jude.png","sections":[]}`,
	})

	songs, err := c.Search("hey")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(songs) != 1 {
		t.Fatalf("Search() returned %d songs, want 1", len(songs))
	}
	s := songs[0]
	if s.SongName != "hey jude" {
		t.Errorf("SongName = %q, want %q", s.SongName, "hey jude")
	}
	if s.Artist == nil || *s.Artist != "The Beatles" {
		t.Errorf("Artist = %v, want The Beatles", s.Artist)
	}
	if s.Image == nil || *s.Image != "jude.png" {
		t.Errorf("Image = %v, want jude.png", s.Image)
	}
}

func TestResolve_ExactMatchModuloNormalization(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"my_song.json":       validSong,
		"my_song_remix.json": validSong,
	})

	for _, name := range []string{"my_song", "My Song", "MY_SONG", "my song"} {
		t.Run(name, func(t *testing.T) {
			song, err := c.Resolve(name)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", name, err)
			}
			if song.SongName != "my_song" {
				t.Errorf("SongName = %q, want %q", song.SongName, "my_song")
			}
		})
	}

	// Substring is not enough for an exact lookup.
	if _, err := c.Resolve("my"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(\"my\") error = %v, want ErrNotFound", err)
	}
}

func TestResolve_NotFound(t *testing.T) {
	c := writeSongs(t, map[string]string{"hey_jude.json": validSong})

	if _, err := c.Resolve("let it be"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestResolve_EmptyName(t *testing.T) {
	c := writeSongs(t, map[string]string{"hey_jude.json": validSong})

	if _, err := c.Resolve(""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Resolve(\"\") error = %v, want ErrEmptyQuery", err)
	}
}

func TestResolve_MalformedIsHardFailure(t *testing.T) {
	c := writeSongs(t, map[string]string{"broken_song.json": `[{]`})

	if _, err := c.Resolve("broken song"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Resolve() error = %v, want ErrMalformed", err)
	}
}

func TestResolve_ReturnsAlignedLyricsAndChords(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"hey_jude.json": `[
			[{"lyrics":"Hey Jude","chords":"F"},{"lyrics":"don't make it bad"}],
			[{"chords":"Bb"}]
		]`,
	})

	song, err := c.Resolve("hey jude")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(song.Lyrics) != 3 || len(song.Chords) != 3 {
		t.Fatalf("len(Lyrics)=%d len(Chords)=%d, want both 3", len(song.Lyrics), len(song.Chords))
	}
	if song.Lyrics[1] != "don't make it bad" || song.Chords[1] != "" {
		t.Errorf("entry 1 = (%q, %q), want (\"don't make it bad\", \"\")", song.Lyrics[1], song.Chords[1])
	}
	if song.Lyrics[2] != "" || song.Chords[2] != "Bb" {
		t.Errorf("entry 2 = (%q, %q), want (\"\", \"Bb\")", song.Lyrics[2], song.Chords[2])
	}
}

func TestAmazingGraceScenario(t *testing.T) {
	c := writeSongs(t, map[string]string{
		"amazing_grace.json":      validSong,
		"amazing_grace_live.json": validSong,
	})

	songs, err := c.Search("grace")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("Search(\"grace\") returned %d songs, want 2", len(songs))
	}

	song, err := c.Resolve("Amazing Grace")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if song.SongName != "amazing_grace" {
		t.Errorf("Resolve picked %q, want amazing_grace", song.SongName)
	}

	if _, err := c.Resolve("amazing graceland"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve of absent name error = %v, want ErrNotFound", err)
	}
}

func TestFSStore_RejectsPathSeparators(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	if err != nil {
		t.Fatalf("NewFSStore() error = %v", err)
	}

	if _, err := store.Read("../etc/passwd"); err == nil {
		t.Error("Read with path separator should fail")
	}
}
