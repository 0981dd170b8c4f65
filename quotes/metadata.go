package quotes

// metadata fields read from provider
const (
	FieldLongName       = "longName"
	FieldShortName      = "shortName"
	FieldCurrency       = "currency"
	FieldExchangeName   = "exchangeName"
	FieldInstrumentType = "instrumentType"
	FieldTimezone       = "timezone"
)

// Metadata define provider descriptive fields of a symbol
type Metadata map[string]string

// String return field value and whether provider supplied it
func (m Metadata) String(field string) (string, bool) {
	if m == nil {
		return "", false
	}

	value, found := m[field]
	return value, found
}

// Set set field value, empty values are ignored
func (m Metadata) Set(field, value string) {
	if value == "" {
		return
	}

	m[field] = value
}
