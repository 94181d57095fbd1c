package lead

import "strings"

// Verdict is the result of a duplicate check for one row.
type Verdict int

const (
	VerdictUnique Verdict = iota
	VerdictDuplicateEmail
	VerdictDuplicatePhone
)

// ContactIdentity carries the two values a persisted lead is
// deduplicated on.
type ContactIdentity struct {
	Email string
	Phone string
}

// DuplicateIndex tracks normalized emails and phones seen so far: the
// snapshot of persisted leads plus every row accepted during the current
// import, so collisions within the same file are caught in row order.
//
// Not safe for concurrent use; rows must be checked sequentially in
// their original file order.
type DuplicateIndex struct {
	emails map[string]struct{}
	phones map[string]struct{}
}

// NewDuplicateIndex seeds an index from existing leads. Empty values
// are excluded.
func NewDuplicateIndex(existing []ContactIdentity) *DuplicateIndex {
	ix := &DuplicateIndex{
		emails: make(map[string]struct{}, len(existing)),
		phones: make(map[string]struct{}, len(existing)),
	}
	for _, id := range existing {
		if email := NormalizeEmail(id.Email); email != "" {
			ix.emails[email] = struct{}{}
		}
		if phone := NormalizePhone(id.Phone); phone != "" {
			ix.phones[phone] = struct{}{}
		}
	}
	return ix
}

// CheckAndAdd classifies one row's contact values. The email is checked
// before the phone, so an email collision wins when both collide. On a
// unique row both non-empty normalized values are added to the index,
// making any later row with the same email or phone a duplicate.
func (ix *DuplicateIndex) CheckAndAdd(email, phone string) Verdict {
	normEmail := NormalizeEmail(email)
	normPhone := NormalizePhone(phone)

	if normEmail != "" {
		if _, ok := ix.emails[normEmail]; ok {
			return VerdictDuplicateEmail
		}
	}
	if normPhone != "" {
		if _, ok := ix.phones[normPhone]; ok {
			return VerdictDuplicatePhone
		}
	}

	if normEmail != "" {
		ix.emails[normEmail] = struct{}{}
	}
	if normPhone != "" {
		ix.phones[normPhone] = struct{}{}
	}
	return VerdictUnique
}

// NormalizeEmail lower-cases and trims an email for comparison.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizePhone keeps only the digits of a phone number, so
// "+1 (555) 010-2030" and "15550102030" compare equal.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
