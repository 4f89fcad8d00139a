package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// InternalNote is one staff-authored note on an order. Notes form an
// append-only ordered list; they are never edited or removed.
type InternalNote struct {
	authorID  kernel.UUID
	timestamp time.Time
	text      string
}

// NewInternalNote creates a note. The text must be non-empty.
func NewInternalNote(authorID kernel.UUID, timestamp time.Time, text string) (InternalNote, error) {
	if err := authorID.Validate(); err != nil {
		return InternalNote{}, err
	}
	if text == "" {
		return InternalNote{}, errs.NewValueIsRequiredError("note text")
	}

	return InternalNote{
		authorID:  authorID,
		timestamp: timestamp,
		text:      text,
	}, nil
}

// RestoreInternalNote reconstructs a persisted note; persistence is trusted.
func RestoreInternalNote(authorID kernel.UUID, timestamp time.Time, text string) InternalNote {
	return InternalNote{authorID: authorID, timestamp: timestamp, text: text}
}

// AuthorID returns the staff identity that wrote the note.
func (n InternalNote) AuthorID() kernel.UUID {
	return n.authorID
}

// Timestamp returns when the note was appended.
func (n InternalNote) Timestamp() time.Time {
	return n.timestamp
}

// Text returns the note body.
func (n InternalNote) Text() string {
	return n.text
}

// render formats the note as a single display line, matching the legacy
// timestamp+author prefix format used when notes were one text blob.
func (n InternalNote) render() string {
	return "[" + n.timestamp.UTC().Format("2006-01-02 15:04") + " " + n.authorID.String() + "] " + n.text
}
