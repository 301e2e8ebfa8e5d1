package model

import "strings"

const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
)

// Tenant identifies who a supplier call is made on behalf of
type Tenant struct {
	EmployeeID string
	ClientID   string
	Language   string
}

// Locale maps the tenant language onto the two locales suppliers understand
func (t Tenant) Locale() string {
	if strings.HasPrefix(strings.ToLower(t.Language), LocaleEnglish) {
		return LocaleEnglish
	}
	return LocaleRussian
}
