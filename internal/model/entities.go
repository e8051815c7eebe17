package model

import "time"

// Profile is the professor bio shown on the public site. There is
// exactly one profile per deployment.
type Profile struct {
	Bio          string `json:"bio"`
	Contact      string `json:"contact"`
	ProfilePhoto string `json:"profile_photo"`
}

// Student is a roster entry: current or former lab member.
type Student struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Degree        string    `json:"degree"`
	Type          string    `json:"type"` // phd, masters, alumni
	ResearchFocus string    `json:"research_focus"`
	CurrentWork   string    `json:"current_work"`
	ProfilePhoto  string    `json:"profile_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

// Publication is a published paper or book chapter.
type Publication struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Year         int       `json:"year"`
	Link         string    `json:"link"`
	DocumentPath string    `json:"document_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResearchProject is an ongoing or completed research effort.
type ResearchProject struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DocumentPath string    `json:"document_path"`
	CreatedAt    time.Time `json:"created_at"`
}

// Notification is an announcement banner on the public site.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // info, warning, success
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is an entry in the downloadable document library.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// SiteData is the aggregate payload served to the public pages.
type SiteData struct {
	Bio           Profile           `json:"bio"`
	Students      []Student         `json:"students"`
	Publications  []Publication     `json:"publications"`
	Research      []ResearchProject `json:"research"`
	Notifications []Notification    `json:"notifications"`
	Documents     []Document        `json:"documents"`
}
