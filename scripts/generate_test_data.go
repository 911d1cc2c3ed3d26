package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// Генератор тестовых CSV файлов со списками NPI для пакетного поиска.
// Часть номеров намеренно делается невалидной для проверки изоляции
// ошибок в пакетной обработке.

func main() {
	gofakeit.Seed(0)

	sizes := []struct {
		name string
		size int
	}{
		{"small", 10},
		{"medium", 100},
		{"large", 1000},
	}

	dataDir := filepath.Join("tests", "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	for _, size := range sizes {
		fmt.Printf("Generating %s list (%d records)...\n", size.name, size.size)

		filename := filepath.Join(dataDir, fmt.Sprintf("npi_list_%s.csv", size.name))
		file, err := os.Create(filename)
		if err != nil {
			log.Fatalf("Failed to create file %s: %v", filename, err)
		}

		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"NPI Number", "Provider Label"}); err != nil {
			log.Fatalf("Failed to write header: %v", err)
		}

		for i := 0; i < size.size; i++ {
			npi := generateNPI()

			// Каждый двадцатый номер портим для проверки обработки ошибок
			if i%20 == 19 {
				npi = npi[:9]
			}

			row := []string{npi, gofakeit.Name()}
			if err := writer.Write(row); err != nil {
				log.Fatalf("Failed to write row: %v", err)
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			log.Fatalf("Failed to flush CSV: %v", err)
		}
		file.Close()

		fmt.Printf("Generated %s\n", filename)
	}
}

// generateNPI генерирует номер NPI с корректной контрольной цифрой.
// Контрольная цифра считается по алгоритму Луна с префиксом 80840.
func generateNPI() string {
	digits := make([]int, 9)
	digits[0] = 1 + gofakeit.Number(0, 1) // первая цифра 1 или 2
	for i := 1; i < 9; i++ {
		digits[i] = gofakeit.Number(0, 9)
	}

	sum := 24 // вклад префикса 80840
	for i, d := range digits {
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	check := (10 - sum%10) % 10

	npi := ""
	for _, d := range digits {
		npi += strconv.Itoa(d)
	}
	return npi + strconv.Itoa(check)
}
