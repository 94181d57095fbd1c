package lead

// FieldKey identifies one importable lead field. The set of keys is
// closed: a column mapping may only target a declared key (or the empty
// key, which means the column is skipped).
type FieldKey string

const (
	FieldName            FieldKey = "name"
	FieldEmail           FieldKey = "email"
	FieldPhone           FieldKey = "phone"
	FieldCompany         FieldKey = "company"
	FieldPosition        FieldKey = "position"
	FieldWebsite         FieldKey = "website"
	FieldSource          FieldKey = "source"
	FieldStatus          FieldKey = "status"
	FieldProduct         FieldKey = "product"
	FieldValue           FieldKey = "value"
	FieldAssignedToEmail FieldKey = "assignedToEmail"
	FieldTags            FieldKey = "tags"
	FieldAddress         FieldKey = "address"
	FieldCity            FieldKey = "city"
	FieldState           FieldKey = "state"
	FieldZipCode         FieldKey = "zipCode"
	FieldCountry         FieldKey = "country"
	FieldDefaultLanguage FieldKey = "defaultLanguage"
	FieldDescription     FieldKey = "description"
)

// FieldSpec describes one importable field: its machine key, the label
// shown in mapping UIs, and whether a row without it is rejected.
type FieldSpec struct {
	Key      FieldKey
	Label    string
	Required bool
}

// Fields lists every importable lead field in the order the column
// mapper tries them. Name is the only required field.
var Fields = []FieldSpec{
	{Key: FieldName, Label: "Name", Required: true},
	{Key: FieldEmail, Label: "Email"},
	{Key: FieldPhone, Label: "Phone"},
	{Key: FieldCompany, Label: "Company"},
	{Key: FieldPosition, Label: "Position"},
	{Key: FieldWebsite, Label: "Website"},
	{Key: FieldSource, Label: "Source"},
	{Key: FieldStatus, Label: "Status"},
	{Key: FieldProduct, Label: "Product"},
	{Key: FieldValue, Label: "Value"},
	{Key: FieldAssignedToEmail, Label: "Assigned To Email"},
	{Key: FieldTags, Label: "Tags"},
	{Key: FieldAddress, Label: "Address"},
	{Key: FieldCity, Label: "City"},
	{Key: FieldState, Label: "State"},
	{Key: FieldZipCode, Label: "Zip Code"},
	{Key: FieldCountry, Label: "Country"},
	{Key: FieldDefaultLanguage, Label: "Default Language"},
	{Key: FieldDescription, Label: "Description"},
}

var knownFields = func() map[FieldKey]struct{} {
	m := make(map[FieldKey]struct{}, len(Fields))
	for _, f := range Fields {
		m[f.Key] = struct{}{}
	}
	return m
}()

// KnownField reports whether key is one of the declared lead fields.
func KnownField(key FieldKey) bool {
	_, ok := knownFields[key]
	return ok
}
