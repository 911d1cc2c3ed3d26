package registry

import (
	"regexp"
	"strings"
)

var npiPattern = regexp.MustCompile(`^\d{10}$`)

// ValidateNPI проверяет формат номера NPI: ровно 10 десятичных цифр
// после обрезки окружающих пробелов. Контрольная цифра (алгоритм Луна
// с префиксом 80840) не проверяется — реестр сам отвергает несуществующие
// номера пустым результатом.
func ValidateNPI(npi string) bool {
	return npiPattern.MatchString(strings.TrimSpace(npi))
}
