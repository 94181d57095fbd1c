package lead

import (
	"strconv"
	"strings"
)

// Defaults applied to imported leads when the source file does not
// provide a value.
const (
	DefaultSource   = "import"
	DefaultStatus   = "interesting"
	DefaultCountry  = "UAE"
	DefaultLanguage = "System Default"
)

// Record is one raw row projected through a committed column mapping:
// field key to raw string value. Skipped columns are already dropped.
type Record map[FieldKey]string

// Lead is a fully projected, not-yet-persisted lead produced from one
// accepted import row.
type Lead struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Company         string
	Position        string
	Website         string
	Source          string
	Status          string
	Product         string
	Value           *float64
	AssignedTo      string
	Tags            []string
	Address         string
	City            string
	State           string
	ZipCode         string
	Country         string
	DefaultLanguage string
	Description     string
}

// Assignee is an active user a lead can be assigned to.
type Assignee struct {
	ID    string
	Email string
}

// AssigneeIndex resolves a normalized email to a user identifier.
type AssigneeIndex map[string]string

// NewAssigneeIndex builds a lookup over all active users.
func NewAssigneeIndex(users []Assignee) AssigneeIndex {
	ix := make(AssigneeIndex, len(users))
	for _, u := range users {
		if email := NormalizeEmail(u.Email); email != "" {
			ix[email] = u.ID
		}
	}
	return ix
}

// NewImportedLead builds a lead from a projected record under the given
// pre-minted identifier. Tags are split on commas, the value field is
// parsed as a number (unparseable leaves it unset), assignedToEmail is
// resolved against the active-user index (a miss leaves the assignment
// unset), and fixed defaults fill absent source, status, country and
// default language.
func NewImportedLead(id string, rec Record, assignees AssigneeIndex) Lead {
	l := Lead{
		ID:              id,
		Name:            strings.TrimSpace(rec[FieldName]),
		Email:           strings.TrimSpace(rec[FieldEmail]),
		Phone:           strings.TrimSpace(rec[FieldPhone]),
		Company:         strings.TrimSpace(rec[FieldCompany]),
		Position:        strings.TrimSpace(rec[FieldPosition]),
		Website:         strings.TrimSpace(rec[FieldWebsite]),
		Source:          strings.TrimSpace(rec[FieldSource]),
		Status:          strings.TrimSpace(rec[FieldStatus]),
		Product:         strings.TrimSpace(rec[FieldProduct]),
		Address:         strings.TrimSpace(rec[FieldAddress]),
		City:            strings.TrimSpace(rec[FieldCity]),
		State:           strings.TrimSpace(rec[FieldState]),
		ZipCode:         strings.TrimSpace(rec[FieldZipCode]),
		Country:         strings.TrimSpace(rec[FieldCountry]),
		DefaultLanguage: strings.TrimSpace(rec[FieldDefaultLanguage]),
		Description:     strings.TrimSpace(rec[FieldDescription]),
	}

	if l.Source == "" {
		l.Source = DefaultSource
	}
	if l.Status == "" {
		l.Status = DefaultStatus
	}
	if l.Country == "" {
		l.Country = DefaultCountry
	}
	if l.DefaultLanguage == "" {
		l.DefaultLanguage = DefaultLanguage
	}

	if raw := strings.TrimSpace(rec[FieldValue]); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			l.Value = &v
		}
	}

	if email := NormalizeEmail(rec[FieldAssignedToEmail]); email != "" {
		l.AssignedTo = assignees[email]
	}

	l.Tags = splitTags(rec[FieldTags])
	return l
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
