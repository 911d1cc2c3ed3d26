package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ParseText разбирает список NPI из текстового ввода: номера
// разделяются запятыми и/или переводами строк, пустые элементы
// отбрасываются
func ParseText(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	npis := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			npis = append(npis, trimmed)
		}
	}
	return npis
}

// ParseCSV разбирает CSV файл со списком NPI. Колонка выбирается по
// заголовку, содержащему подстроку "npi" без учета регистра; если
// такой нет, берется первая колонка. Файлы не в UTF-8 декодируются
// как Windows-1252.
func ParseCSV(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	data, err = toUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return extractColumn(rows), nil
}

// ParseExcel разбирает Excel файл со списком NPI по тем же правилам
// выбора колонки, что и ParseCSV. Читается первый лист книги.
func ParseExcel(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}

	return extractColumn(rows), nil
}

// ParseFile разбирает файл со списком NPI, выбирая парсер по
// расширению имени файла (.csv, .xlsx, .xls; иначе простой текст)
func ParseFile(filename string, r io.Reader) ([]string, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return ParseCSV(r)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return ParseExcel(r)
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return ParseText(string(data)), nil
	}
}

// extractColumn выбирает колонку с номерами из табличных строк:
// первая строка трактуется как заголовок, колонка ищется по
// подстроке "npi", иначе используется первая
func extractColumn(rows [][]string) []string {
	if len(rows) == 0 {
		return []string{}
	}

	col := 0
	for i, header := range rows[0] {
		if strings.Contains(strings.ToLower(strings.TrimSpace(header)), "npi") {
			col = i
			break
		}
	}

	npis := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[col]); value != "" {
			npis = append(npis, value)
		}
	}
	return npis
}

// toUTF8 возвращает данные в UTF-8; не-UTF-8 ввод декодируется как
// Windows-1252
func toUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file encoding: %w", err)
	}
	return decoded, nil
}
