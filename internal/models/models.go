package models

// Auth
type SignupRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Instrument string `json:"instrument"`
	Role       string `json:"role,omitempty"`
}

type SignupResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// PublicUser is the credential-free view of a musician returned on login.
type PublicUser struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	Instrument string `json:"instrument"`
}

// Song catalog
type CatalogEntry struct {
	SongName string  `json:"songName"`
	Artist   *string `json:"artist"`
	Image    *string `json:"image"`
}

type SearchSongsResponse struct {
	SearchTerm string         `json:"searchTerm"`
	Count      int            `json:"count"`
	Songs      []CatalogEntry `json:"songs"`
}

// Song is the rendering-ready representation of a song document:
// lyrics[i] and chords[i] refer to the same line entry after the
// document's sections are flattened in order.
type Song struct {
	SongName string   `json:"songName"`
	Artist   *string  `json:"artist"`
	Image    *string  `json:"image"`
	Lyrics   []string `json:"lyrics"`
	Chords   []string `json:"chords"`
}

type SongResponse struct {
	Song *Song `json:"song"`
}

// Error response
type ErrorResponse struct {
	Error string `json:"error"`
}
