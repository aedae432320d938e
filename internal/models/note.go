package models

import "time"

// Note is a persisted note. PhotoRefs holds blob filenames in the order the
// photos were attached; every ref points at a blob that already existed when
// the note was saved. CreatedAt is set once at creation and survives
// re-saves under the same ID.
type Note struct {
	ID          string
	Title       string
	Description string
	PhotoRefs   []string
	CreatedAt   time.Time
}
