package normalization

// Focus приоритетный набор колонок отображения
type Focus string

const (
	// FocusFacility приоритет данных организации/учреждения
	FocusFacility Focus = "facility"

	// FocusPerson приоритет персональных данных провайдера
	FocusPerson Focus = "person"
)

// Mode режим проекции результата в таблицу
type Mode struct {
	Focus   Focus `json:"focus"`
	ShowAll bool  `json:"show_all"`
}

// Table табличное представление результата: заголовок и строки в
// порядке элементов пакета
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// errorColumn имя колонки с текстом ошибки для ошибочных строк
const errorColumn = "error"

// maxExtraColumns сколько дополнительных колонок добавляется к
// приоритетным в усеченном режиме
const maxExtraColumns = 3

// facilityPriorityColumns приоритетные колонки режима организации
var facilityPriorityColumns = []string{
	"npi", "entity_type", "facility_name", "doing_business_as",
	"primary_practice_city", "primary_practice_state",
	"primary_practice_zip", "primary_practice_phone",
}

// personPriorityColumns приоритетные колонки персонального режима
var personPriorityColumns = []string{
	"npi", "entity_type", "name", "primary_practice_city",
	"primary_practice_state", "primary_practice_zip",
	"primary_practice_phone",
}

// Project проецирует результат пакета в таблицу с именованными
// колонками согласно режиму отображения.
//
// Если в результате есть хотя бы одна ошибочная строка, приоритетная
// фильтрация не применяется ко всему набору: сохраняется полная форма
// строки, включая колонку ошибки, чтобы сбои оставались видимыми.
func Project(result *BatchResult, mode Mode) Table {
	if result == nil || len(result.Entries) == 0 {
		return Table{Columns: []string{}, Rows: [][]string{}}
	}

	columns := projectedColumns(result, mode)

	rows := make([][]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		rows = append(rows, projectEntry(entry, columns))
	}

	return Table{Columns: columns, Rows: rows}
}

// ProjectRecords проецирует чистый список записей (результат поиска)
// в таблицу того же формата
func ProjectRecords(records []*ProviderRecord, mode Mode) Table {
	result := &BatchResult{Entries: make([]BatchEntry, 0, len(records))}
	for _, rec := range records {
		result.Entries = append(result.Entries, BatchEntry{Record: rec})
	}
	return Project(result, mode)
}

// projectedColumns выбирает набор и порядок колонок таблицы
func projectedColumns(result *BatchResult, mode Mode) []string {
	if result.HasErrors() {
		return errorShapeColumns(result)
	}

	all := RecordColumns()
	if mode.ShowAll {
		return all
	}

	priority := personPriorityColumns
	if mode.Focus == FocusFacility {
		priority = facilityPriorityColumns
	}

	selected := make([]string, 0, len(priority)+maxExtraColumns)
	chosen := make(map[string]bool, len(priority))
	for _, name := range priority {
		selected = append(selected, name)
		chosen[name] = true
	}

	// Добиваем несколько колонок из оставшихся в каноническом порядке
	extra := 0
	for _, name := range all {
		if extra == maxExtraColumns {
			break
		}
		if chosen[name] {
			continue
		}
		selected = append(selected, name)
		extra++
	}

	return selected
}

// errorShapeColumns полная форма колонок для набора с ошибками.
// Если успешных строк нет вовсе, остаются только номер и текст ошибки.
func errorShapeColumns(result *BatchResult) []string {
	hasRecords := false
	for _, e := range result.Entries {
		if e.Record != nil {
			hasRecords = true
			break
		}
	}
	if !hasRecords {
		return []string{"npi", errorColumn}
	}
	return append(RecordColumns(), errorColumn)
}

// projectEntry строит строку таблицы для одного элемента результата
func projectEntry(entry BatchEntry, columns []string) []string {
	row := make([]string, len(columns))
	for i, name := range columns {
		switch {
		case name == errorColumn:
			if entry.Err != nil {
				row[i] = entry.Err.Kind.Message()
			}
		case entry.Err != nil:
			if name == "npi" {
				row[i] = entry.Err.NPI
			}
		default:
			row[i] = columnValue(entry.Record, name)
		}
	}
	return row
}
