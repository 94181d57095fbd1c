package lead

import "github.com/google/uuid"

// ImportNoteBody is the fixed body of the system note written alongside
// every imported lead.
const ImportNoteBody = "Imported via CSV"

// Note is a system-authored note attached to a lead.
type Note struct {
	ID     string
	LeadID string
	Body   string
	System bool
}

// NewImportNote builds the companion note for an imported lead. The
// lead identifier is minted before persistence, so the note can
// reference it while both are still in memory.
func NewImportNote(leadID string) Note {
	return Note{
		ID:     uuid.NewString(),
		LeadID: leadID,
		Body:   ImportNoteBody,
		System: true,
	}
}
