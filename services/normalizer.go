package services

import "recordapi/models"

// fieldAliases maps each canonical field to the raw header variants it may
// appear under, in precedence order: the first present key wins.
var fieldAliases = map[string][]string{
	"Name":  {"name", "Name", "NAME"},
	"City":  {"city", "City", "CITY"},
	"Age":   {"age", "Age", "AGE"},
	"Email": {"email", "Email", "EMAIL"},
	"Phone": {"phone", "Phone", "PHONE"},
}

// NormalizeRecord maps a raw row with arbitrary-case keys onto the
// canonical Record shape. Normalization is total: a field whose aliases are
// all absent becomes the empty string, so downstream stages treat "" as
// missing rather than relying on key absence. Applying it twice yields the
// same result as applying it once.
func NormalizeRecord(raw map[string]string) models.Record {
	values := make(map[string]string, len(models.CanonicalFields))
	for _, field := range models.CanonicalFields {
		for _, alias := range fieldAliases[field] {
			if v, ok := raw[alias]; ok {
				values[field] = v
				break
			}
		}
	}

	return models.Record{
		Name:  values["Name"],
		City:  values["City"],
		Age:   values["Age"],
		Email: values["Email"],
		Phone: values["Phone"],
	}
}

// NormalizeRecords normalizes a whole raw row sequence, preserving order.
func NormalizeRecords(raw []map[string]string) []models.Record {
	records := make([]models.Record, 0, len(raw))
	for _, row := range raw {
		records = append(records, NormalizeRecord(row))
	}
	return records
}
