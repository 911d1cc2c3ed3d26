package normalization

import "strconv"

// EntityKind тип субъекта записи реестра
type EntityKind string

const (
	EntityIndividual   EntityKind = "Individual"
	EntityOrganization EntityKind = "Organization"
)

// ErrorKind классификация ошибок обработки одного номера в пакете
type ErrorKind string

const (
	// ErrInvalidFormat номер не прошел локальную проверку формата,
	// сетевой вызов не выполнялся
	ErrInvalidFormat ErrorKind = "invalid_format"

	// ErrLookupFailed запрос к реестру завершился ошибкой транспорта
	// или декодирования
	ErrLookupFailed ErrorKind = "lookup_failed"

	// ErrNotFound реестр вернул корректный пустой результат
	ErrNotFound ErrorKind = "not_found"
)

// Message возвращает текст ошибки для строки результата
func (k ErrorKind) Message() string {
	switch k {
	case ErrInvalidFormat:
		return "Invalid NPI format (must be 10 digits)"
	case ErrLookupFailed:
		return "API request failed"
	case ErrNotFound:
		return "No results found"
	}
	return string(k)
}

// ProviderRecord каноническая плоская запись провайдера.
// Создается нормализатором один раз и далее не изменяется; живет только
// в пределах одного пакетного запуска.
type ProviderRecord struct {
	NPI              string     `json:"npi"`
	EntityType       EntityKind `json:"entity_type"`
	FacilityName     string     `json:"facility_name"`
	Name             string     `json:"name"`
	DoingBusinessAs  string     `json:"doing_business_as"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	OrganizationName string     `json:"organization_name"`

	PrimaryTaxonomy     string `json:"primary_taxonomy"`
	TaxonomyDescription string `json:"taxonomy_description"`

	PracticeAddress string `json:"primary_practice_address"`
	PracticeCity    string `json:"primary_practice_city"`
	PracticeState   string `json:"primary_practice_state"`
	PracticeZip     string `json:"primary_practice_zip"`
	PracticeCountry string `json:"primary_practice_country"`
	PracticePhone   string `json:"primary_practice_phone"`
	PracticeFax     string `json:"primary_practice_fax"`

	MailingAddress string `json:"mailing_address"`
	MailingCity    string `json:"mailing_city"`
	MailingState   string `json:"mailing_state"`
	MailingZip     string `json:"mailing_zip"`
	MailingCountry string `json:"mailing_country"`

	Status          string `json:"status"`
	LastUpdated     string `json:"last_updated"`
	EnumerationDate string `json:"enumeration_date"`

	AuthorizedOfficialFirst string `json:"authorized_official_first"`
	AuthorizedOfficialLast  string `json:"authorized_official_last"`
	AuthorizedOfficialTitle string `json:"authorized_official_title"`
	AuthorizedOfficialPhone string `json:"authorized_official_phone"`

	LocationCount int `json:"location_count"`
}

// ErrorRecord ошибка обработки одного номера, сохраненная как данные
type ErrorRecord struct {
	NPI  string    `json:"npi"`
	Kind ErrorKind `json:"error_kind"`
}

// BatchEntry один элемент результата пакетной обработки:
// либо запись, либо ошибка, ровно одно из двух
type BatchEntry struct {
	Record *ProviderRecord `json:"record,omitempty"`
	Err    *ErrorRecord    `json:"error,omitempty"`
}

// BatchResult упорядоченный результат пакетной обработки.
// Порядок элементов совпадает с порядком непустых входных номеров,
// дубликаты сохраняются.
type BatchResult struct {
	Entries []BatchEntry `json:"entries"`
}

// HasErrors сообщает, есть ли в результате хотя бы одна ошибочная строка
func (r *BatchResult) HasErrors() bool {
	for _, e := range r.Entries {
		if e.Err != nil {
			return true
		}
	}
	return false
}

// BatchStats сводная статистика пакетного запуска
type BatchStats struct {
	Total         int `json:"total"`
	Organizations int `json:"organizations"`
	Individuals   int `json:"individuals"`
	Errors        int `json:"errors"`
}

// Stats считает сводку по результату
func (r *BatchResult) Stats() BatchStats {
	stats := BatchStats{Total: len(r.Entries)}
	for _, e := range r.Entries {
		switch {
		case e.Err != nil:
			stats.Errors++
		case e.Record.EntityType == EntityOrganization:
			stats.Organizations++
		default:
			stats.Individuals++
		}
	}
	return stats
}

// columnDef колонка канонического представления записи
type columnDef struct {
	name  string
	value func(*ProviderRecord) string
}

// recordColumns канонический порядок колонок записи.
// Проекция и экспорт опираются на этот порядок, он же определяет
// "оставшиеся" колонки при усеченном режиме отображения.
var recordColumns = []columnDef{
	{"npi", func(r *ProviderRecord) string { return r.NPI }},
	{"entity_type", func(r *ProviderRecord) string { return string(r.EntityType) }},
	{"facility_name", func(r *ProviderRecord) string { return r.FacilityName }},
	{"name", func(r *ProviderRecord) string { return r.Name }},
	{"doing_business_as", func(r *ProviderRecord) string { return r.DoingBusinessAs }},
	{"first_name", func(r *ProviderRecord) string { return r.FirstName }},
	{"last_name", func(r *ProviderRecord) string { return r.LastName }},
	{"organization_name", func(r *ProviderRecord) string { return r.OrganizationName }},
	{"primary_taxonomy", func(r *ProviderRecord) string { return r.PrimaryTaxonomy }},
	{"taxonomy_description", func(r *ProviderRecord) string { return r.TaxonomyDescription }},
	{"primary_practice_address", func(r *ProviderRecord) string { return r.PracticeAddress }},
	{"primary_practice_city", func(r *ProviderRecord) string { return r.PracticeCity }},
	{"primary_practice_state", func(r *ProviderRecord) string { return r.PracticeState }},
	{"primary_practice_zip", func(r *ProviderRecord) string { return r.PracticeZip }},
	{"primary_practice_country", func(r *ProviderRecord) string { return r.PracticeCountry }},
	{"primary_practice_phone", func(r *ProviderRecord) string { return r.PracticePhone }},
	{"primary_practice_fax", func(r *ProviderRecord) string { return r.PracticeFax }},
	{"mailing_address", func(r *ProviderRecord) string { return r.MailingAddress }},
	{"mailing_city", func(r *ProviderRecord) string { return r.MailingCity }},
	{"mailing_state", func(r *ProviderRecord) string { return r.MailingState }},
	{"mailing_zip", func(r *ProviderRecord) string { return r.MailingZip }},
	{"mailing_country", func(r *ProviderRecord) string { return r.MailingCountry }},
	{"status", func(r *ProviderRecord) string { return r.Status }},
	{"last_updated", func(r *ProviderRecord) string { return r.LastUpdated }},
	{"enumeration_date", func(r *ProviderRecord) string { return r.EnumerationDate }},
	{"authorized_official_first", func(r *ProviderRecord) string { return r.AuthorizedOfficialFirst }},
	{"authorized_official_last", func(r *ProviderRecord) string { return r.AuthorizedOfficialLast }},
	{"authorized_official_title", func(r *ProviderRecord) string { return r.AuthorizedOfficialTitle }},
	{"authorized_official_phone", func(r *ProviderRecord) string { return r.AuthorizedOfficialPhone }},
	{"location_count", func(r *ProviderRecord) string { return strconv.Itoa(r.LocationCount) }},
}

// RecordColumns возвращает имена колонок в каноническом порядке
func RecordColumns() []string {
	names := make([]string, len(recordColumns))
	for i, col := range recordColumns {
		names[i] = col.name
	}
	return names
}

// columnValue возвращает значение колонки записи по имени
func columnValue(r *ProviderRecord, name string) string {
	for _, col := range recordColumns {
		if col.name == name {
			return col.value(r)
		}
	}
	return ""
}
