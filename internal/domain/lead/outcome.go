package lead

// OutcomeKind is the terminal classification of one import row.
type OutcomeKind int

const (
	OutcomeImported OutcomeKind = iota
	OutcomeSkippedMissingName
	OutcomeDuplicateEmail
	OutcomeDuplicatePhone
)

// RowOutcome records what happened to one data row. Row is the 1-based
// position in the source file counting the header line as row 1, so the
// first data row is row 2.
type RowOutcome struct {
	Row    int
	Kind   OutcomeKind
	Name   string
	Reason string
}
