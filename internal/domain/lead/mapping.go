package lead

import (
	"fmt"
	"strings"
)

// ColumnMapping translates source file headers into lead field keys.
// An empty target key means the column is skipped.
type ColumnMapping map[string]FieldKey

// AutoMap proposes a mapping for the given headers. Each header is
// normalized and compared against every field's key and label, in the
// order the fields are declared; the first field whose key or label
// matches, or whose key is contained in the header, wins. Unmatched
// headers map to the empty key. The result is a suggestion only; the
// caller may overwrite any entry before committing.
func AutoMap(headers []string) ColumnMapping {
	mapping := make(ColumnMapping, len(headers))
	for _, header := range headers {
		mapping[header] = matchField(header)
	}
	return mapping
}

func matchField(header string) FieldKey {
	normalized := normalizeLabel(header)
	for _, field := range Fields {
		key := normalizeLabel(string(field.Key))
		if normalized == key || normalized == normalizeLabel(field.Label) || strings.Contains(normalized, key) {
			return field.Key
		}
	}
	return ""
}

// normalizeLabel lower-cases a header or label and strips whitespace,
// hyphens and underscores so "E-mail Address" compares as "emailaddress".
func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Validate rejects any mapping entry whose target is outside the
// declared field set. Empty targets (skipped columns) are allowed.
func (m ColumnMapping) Validate() error {
	for header, key := range m {
		if key == "" {
			continue
		}
		if !KnownField(key) {
			return fmt.Errorf("%w: column %q maps to %q", ErrUnknownField, header, key)
		}
	}
	return nil
}
