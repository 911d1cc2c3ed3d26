package importer

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma separated", "1234567893,1558364273", []string{"1234567893", "1558364273"}},
		{"newline separated", "1234567893\n1558364273\n", []string{"1234567893", "1558364273"}},
		{"mixed separators with blanks", "1234567893, ,\n\n 1558364273 ,", []string{"1234567893", "1558364273"}},
		{"windows line endings", "1234567893\r\n1558364273", []string{"1234567893", "1558364273"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseText(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCSVColumnDetection(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{
			"npi column by header substring",
			"Provider Name,NPI Number\nJohn Doe,1234567893\nAcme,1558364273\n",
			[]string{"1234567893", "1558364273"},
		},
		{
			"case insensitive header",
			"name,Provider npi\nJohn,1234567893\n",
			[]string{"1234567893"},
		},
		{
			"fallback to first column",
			"Number,Label\n1234567893,John\n1558364273,Acme\n",
			[]string{"1234567893", "1558364273"},
		},
		{
			"blank cells skipped",
			"npi\n1234567893\n\n1558364273\n",
			[]string{"1234567893", "1558364273"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("ParseCSV() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCSV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCSVWindows1252(t *testing.T) {
	// Файл в Windows-1252: заголовок содержит не-ASCII символ
	utf8CSV := "Médecin,npi\nDr. Dupont,1234567893\n"
	encoded, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(utf8CSV))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	got, err := ParseCSV(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	want := []string{"1234567893"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV() = %v, want %v", got, want)
	}
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"Label", "NPI"},
		{"John", "1234567893"},
		{"Acme", "1558364273"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to build fixture: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := ParseExcel(&buf)
	if err != nil {
		t.Fatalf("ParseExcel() error = %v", err)
	}
	want := []string{"1234567893", "1558364273"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseExcel() = %v, want %v", got, want)
	}
}

func TestParseFileDispatch(t *testing.T) {
	// Текстовый файл без табличного заголовка
	got, err := ParseFile("list.txt", strings.NewReader("1234567893\n1558364273"))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	want := []string{"1234567893", "1558364273"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFile(txt) = %v, want %v", got, want)
	}

	// CSV выбирается по расширению независимо от регистра
	got, err = ParseFile("LIST.CSV", strings.NewReader("npi\n1234567893\n"))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"1234567893"}) {
		t.Errorf("ParseFile(csv) = %v", got)
	}
}
