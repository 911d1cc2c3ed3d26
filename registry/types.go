package registry

// Response ответ NPPES NPI Registry API (версия 2.1).
// Для поиска по номеру содержит ноль или одну запись, для поиска по
// критериям — ноль и более записей при общем счетчике result_count.
type Response struct {
	ResultCount int      `json:"result_count"`
	Results     []Result `json:"results"`
}

// Result одна запись реестра провайдеров
type Result struct {
	Number          string      `json:"number"`
	EnumerationType string      `json:"enumeration_type"`
	Basic           Basic       `json:"basic"`
	Addresses       []Address   `json:"addresses"`
	Taxonomies      []Taxonomy  `json:"taxonomies"`
	OtherNames      []OtherName `json:"other_names"`

	// Дополнительные практические адреса. Реестр отдает список под двумя
	// альтернативными ключами в зависимости от версии выгрузки.
	PracticeLocations    []Address `json:"practiceLocations"`
	PracticeLocationsAlt []Address `json:"practice_locations"`
}

// Basic основной блок данных провайдера
type Basic struct {
	// Наименование организации. Реестр заполняет разные поля для разных
	// поколений записей, поэтому нормализатор проверяет их по цепочке.
	OrganizationName                    string `json:"organization_name"`
	Name                                string `json:"name"`
	LegalBusinessName                   string `json:"legal_business_name"`
	ParentOrganizationLegalBusinessName string `json:"parent_organization_legal_business_name"`

	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	Credential string `json:"credential"`

	Status          string `json:"status"`
	LastUpdated     string `json:"last_updated"`
	EnumerationDate string `json:"enumeration_date"`

	AuthorizedOfficialFirstName       string `json:"authorized_official_first_name"`
	AuthorizedOfficialLastName        string `json:"authorized_official_last_name"`
	AuthorizedOfficialTitleOrPosition string `json:"authorized_official_title_or_position"`
	AuthorizedOfficialTelephoneNumber string `json:"authorized_official_telephone_number"`
}

// Address адрес провайдера
type Address struct {
	AddressPurpose  string `json:"address_purpose"` // LOCATION, MAILING
	AddressType     string `json:"address_type"`
	Address1        string `json:"address_1"`
	Address2        string `json:"address_2"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	CountryCode     string `json:"country_code"`
	CountryName     string `json:"country_name"`
	TelephoneNumber string `json:"telephone_number"`
	FaxNumber       string `json:"fax_number"`
}

// Taxonomy специализация провайдера по классификатору
type Taxonomy struct {
	Code    string `json:"code"`
	Desc    string `json:"desc"`
	Primary bool   `json:"primary"`
	State   string `json:"state"`
	License string `json:"license"`
}

// OtherName альтернативное наименование (DBA и другие типы)
type OtherName struct {
	OrganizationName string `json:"organization_name"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Code             string `json:"code"`
}
