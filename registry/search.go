package registry

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMissingCriteria поиск отклонен: не заполнен ни один критерий.
// Проверяется до любого сетевого вызова.
var ErrMissingCriteria = errors.New("at least one search criterion is required")

// SearchCriteria набор необязательных критериев поиска по реестру.
// Пустые поля не попадают в параметры запроса.
type SearchCriteria struct {
	OrganizationName    string `json:"organization_name"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	City                string `json:"city"`
	State               string `json:"state"`
	PostalCode          string `json:"postal_code"`
	TaxonomyDescription string `json:"taxonomy_description"`
	AddressPurpose      string `json:"address_purpose"`
	EnumerationType     string `json:"enumeration_type"`
}

// IsEmpty сообщает, что все критерии пустые после обрезки пробелов
func (sc SearchCriteria) IsEmpty() bool {
	fields := []string{
		sc.OrganizationName,
		sc.FirstName,
		sc.LastName,
		sc.City,
		sc.State,
		sc.PostalCode,
		sc.TaxonomyDescription,
		sc.AddressPurpose,
		sc.EnumerationType,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// BuildQuery переводит критерии в параметры запроса реестра.
// Двухбуквенный код штата приводится к верхнему регистру.
func (sc SearchCriteria) BuildQuery() (url.Values, error) {
	if sc.IsEmpty() {
		return nil, ErrMissingCriteria
	}

	params := url.Values{}
	params.Set("version", APIVersion)

	setIfNotEmpty(params, "organization_name", sc.OrganizationName)
	setIfNotEmpty(params, "first_name", sc.FirstName)
	setIfNotEmpty(params, "last_name", sc.LastName)
	setIfNotEmpty(params, "city", sc.City)
	setIfNotEmpty(params, "state", strings.ToUpper(strings.TrimSpace(sc.State)))
	setIfNotEmpty(params, "postal_code", sc.PostalCode)
	setIfNotEmpty(params, "taxonomy_description", sc.TaxonomyDescription)
	setIfNotEmpty(params, "address_purpose", sc.AddressPurpose)
	setIfNotEmpty(params, "enumeration_type", sc.EnumerationType)

	return params, nil
}

func setIfNotEmpty(params url.Values, key, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		params.Set(key, value)
	}
}
