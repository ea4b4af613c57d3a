package models

import "time"

// Note is a single sidebar note. JSON field names follow the wire contract
// the web client expects.
type Note struct {
	NoteID    int64     `json:"note_id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
