package normalization

import (
	"strings"

	"npiregistry/registry"
)

// Normalize преобразует сырой ответ реестра в каноническую запись.
// Возвращает nil, если ответ не содержит результатов. Чистое
// преобразование: не обращается к сети, не возвращает ошибок,
// отсутствующие поля заменяются пустыми строками.
func Normalize(resp *registry.Response) *ProviderRecord {
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}

	res := resp.Results[0]
	basic := res.Basic

	rec := &ProviderRecord{
		NPI:        res.Number,
		EntityType: entityKindOf(res.EnumerationType),

		Status:          basic.Status,
		LastUpdated:     basic.LastUpdated,
		EnumerationDate: basic.EnumerationDate,

		AuthorizedOfficialFirst: basic.AuthorizedOfficialFirstName,
		AuthorizedOfficialLast:  basic.AuthorizedOfficialLastName,
		AuthorizedOfficialTitle: basic.AuthorizedOfficialTitleOrPosition,
		AuthorizedOfficialPhone: basic.AuthorizedOfficialTelephoneNumber,
	}

	// Имена: для организации авторитетно наименование организации,
	// персональные поля остаются пустыми, и наоборот
	if rec.EntityType == EntityOrganization {
		rec.OrganizationName = resolveOrganizationName(basic)
		rec.FacilityName = rec.OrganizationName
		rec.Name = rec.OrganizationName
	} else {
		rec.FirstName = basic.FirstName
		rec.LastName = basic.LastName
		rec.Name = strings.TrimSpace(basic.FirstName + " " + basic.LastName)
	}

	rec.DoingBusinessAs = collectDBANames(res.OtherNames)

	assignment := assignAddresses(res.Addresses)
	if assignment.practice != nil {
		a := assignment.practice
		rec.PracticeAddress = joinAddressLines(a.Address1, a.Address2)
		rec.PracticeCity = a.City
		rec.PracticeState = a.State
		rec.PracticeZip = a.PostalCode
		rec.PracticeCountry = a.CountryName
		rec.PracticePhone = a.TelephoneNumber
		rec.PracticeFax = a.FaxNumber
	}
	if assignment.mailing != nil {
		a := assignment.mailing
		rec.MailingAddress = joinAddressLines(a.Address1, a.Address2)
		rec.MailingCity = a.City
		rec.MailingState = a.State
		rec.MailingZip = a.PostalCode
		rec.MailingCountry = a.CountryName
	}

	rec.PrimaryTaxonomy, rec.TaxonomyDescription = selectPrimaryTaxonomy(res.Taxonomies)

	rec.LocationCount = 1 + len(practiceLocations(res))

	return rec
}

// NormalizeAll нормализует каждый результат ответа поиска по отдельности
func NormalizeAll(resp *registry.Response) []*ProviderRecord {
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}
	records := make([]*ProviderRecord, 0, len(resp.Results))
	for i := range resp.Results {
		single := &registry.Response{
			ResultCount: 1,
			Results:     resp.Results[i : i+1],
		}
		if rec := Normalize(single); rec != nil {
			records = append(records, rec)
		}
	}
	return records
}

// entityKindOf определяет тип субъекта по коду перечисления:
// NPI-1 — физическое лицо, любое другое значение — организация
func entityKindOf(enumerationType string) EntityKind {
	if enumerationType == "NPI-1" {
		return EntityIndividual
	}
	return EntityOrganization
}

// resolveOrganizationName разрешает наименование организации по
// декларативной цепочке кандидатов: первое непустое значение побеждает
func resolveOrganizationName(basic registry.Basic) string {
	candidates := []string{
		basic.OrganizationName,
		basic.Name,
		basic.LegalBusinessName,
		basic.ParentOrganizationLegalBusinessName,
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

// collectDBANames собирает имена "doing business as" из списка
// альтернативных наименований: только записи с типовым кодом DBA,
// дедупликация по точному совпадению с сохранением первого вхождения
func collectDBANames(otherNames []registry.OtherName) string {
	seen := make(map[string]bool)
	names := []string{}
	for _, on := range otherNames {
		if !isDBA(on) {
			continue
		}
		name := on.Name
		if name == "" {
			name = on.OrganizationName
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// isDBA проверяет типовой код DBA. Реестр помечает такие записи кодом
// "3", в разных выгрузках значение встречается в поле code или type.
func isDBA(on registry.OtherName) bool {
	return on.Code == "3" || on.Type == "3"
}

// addressAssignment разрешенные роли адресов из списка
type addressAssignment struct {
	practice *registry.Address
	mailing  *registry.Address
}

// addressStrategy одна стратегия распределения адресов по ролям.
// Возвращает false, если стратегия не распознала ни одного адреса.
type addressStrategy func(addresses []registry.Address) (addressAssignment, bool)

// addressStrategies упорядоченный список стратегий: сначала по явному
// тегу назначения адреса, затем позиционно. Позиционная стратегия
// применяется только когда ни один адрес не несет распознанного тега.
var addressStrategies = []addressStrategy{
	assignByPurposeTag,
	assignByPosition,
}

// assignAddresses распределяет адреса по ролям первой сработавшей
// стратегией
func assignAddresses(addresses []registry.Address) addressAssignment {
	for _, strategy := range addressStrategies {
		if assignment, ok := strategy(addresses); ok {
			return assignment
		}
	}
	return addressAssignment{}
}

// assignByPurposeTag один проход по списку: LOCATION — практический
// адрес, MAILING — почтовый, первый адрес каждой роли побеждает.
// Адреса без распознанного тега игнорируются.
func assignByPurposeTag(addresses []registry.Address) (addressAssignment, bool) {
	var assignment addressAssignment
	matched := false
	for i := range addresses {
		switch addresses[i].AddressPurpose {
		case "LOCATION":
			if assignment.practice == nil {
				assignment.practice = &addresses[i]
			}
			matched = true
		case "MAILING":
			if assignment.mailing == nil {
				assignment.mailing = &addresses[i]
			}
			matched = true
		}
	}
	return assignment, matched
}

// assignByPosition запасная стратегия: первый адрес — практический,
// второй — почтовый
func assignByPosition(addresses []registry.Address) (addressAssignment, bool) {
	if len(addresses) == 0 {
		return addressAssignment{}, false
	}
	assignment := addressAssignment{practice: &addresses[0]}
	if len(addresses) > 1 {
		assignment.mailing = &addresses[1]
	}
	return assignment, true
}

// selectPrimaryTaxonomy выбирает таксономию с флагом primary, при
// отсутствии флага — первую в порядке ответа, при пустом списке —
// пустые строки
func selectPrimaryTaxonomy(taxonomies []registry.Taxonomy) (code, desc string) {
	for _, tax := range taxonomies {
		if tax.Primary {
			return tax.Code, tax.Desc
		}
	}
	if len(taxonomies) > 0 {
		return taxonomies[0].Code, taxonomies[0].Desc
	}
	return "", ""
}

// practiceLocations возвращает список дополнительных практических
// адресов, проверяя оба альтернативных ключа ответа: первый непустой
// побеждает
func practiceLocations(res registry.Result) []registry.Address {
	if len(res.PracticeLocations) > 0 {
		return res.PracticeLocations
	}
	return res.PracticeLocationsAlt
}

func joinAddressLines(line1, line2 string) string {
	return strings.TrimSpace(line1 + " " + line2)
}
