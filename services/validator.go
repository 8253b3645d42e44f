package services

import (
	"regexp"
	"strconv"
	"strings"

	"recordapi/models"
)

var (
	nameCharsRegex = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	emailRegex     = regexp.MustCompile(`(?i)^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// disposableDomains are substrings that mark an email as coming from a
// throwaway provider.
var disposableDomains = []string{
	"tempmail",
	"throwaway",
	"mailinator",
	"guerrillamail",
	"10minutemail",
}

// ValidateRecord evaluates every field rule against the candidate and
// returns the violations in fixed field order: Name, City, Age, Email,
// Phone. Rules never short-circuit, so a client sees all violations at
// once. An empty slice means the record is valid. The input is never
// mutated.
func ValidateRecord(record models.Record) []string {
	var errors []string

	errors = append(errors, validateNameLike("Name", record.Name)...)
	errors = append(errors, validateNameLike("City", record.City)...)
	errors = append(errors, validateAge(record.Age)...)
	errors = append(errors, validateEmail(record.Email)...)
	errors = append(errors, validatePhone(record.Phone)...)

	return errors
}

// validateNameLike covers Name and City, which share the same rule shape.
func validateNameLike(field, value string) []string {
	var errors []string

	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 2 {
		errors = append(errors, field+" must be at least 2 characters")
	}
	if trimmed != "" && !nameCharsRegex.MatchString(trimmed) {
		errors = append(errors, field+" can only contain letters, spaces, hyphens and apostrophes")
	}

	return errors
}

func validateAge(value string) []string {
	age, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return []string{"Age must be a valid number"}
	}

	var errors []string
	if age < 1 || age > 120 {
		errors = append(errors, "Age must be between 1 and 120")
	}
	// Compliance rule: the age is valid but flagged.
	if age >= 1 && age < 13 {
		errors = append(errors, "Age below 13 requires parental consent")
	}
	return errors
}

func validateEmail(value string) []string {
	if !emailRegex.MatchString(value) {
		return []string{"Please enter a valid email address"}
	}

	lower := strings.ToLower(value)
	for _, domain := range disposableDomains {
		if strings.Contains(lower, domain) {
			return []string{"Disposable email addresses are not allowed"}
		}
	}
	return nil
}

func validatePhone(value string) []string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
	cleaned = strings.TrimPrefix(cleaned, "+")

	if cleaned == "" || !isAllDigits(cleaned) {
		return []string{"Phone must contain only digits"}
	}
	if len(cleaned) < 8 || len(cleaned) > 15 {
		return []string{"Phone must be between 8 and 15 digits"}
	}
	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
