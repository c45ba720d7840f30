// Command import_books bulk-loads a CSV file into a catalog file.
// Each row is title,author,year. Rows that fail to parse are skipped.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"book-catalog/catalog"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s books.csv [catalog-file]\n", os.Args[0])
		os.Exit(2)
	}
	csvPath := os.Args[1]
	catalogPath := "library_books.json"
	if len(os.Args) == 3 {
		catalogPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	store := catalog.Open(catalogPath)
	fmt.Printf("Importing books from %s into %s...\n", csvPath, catalogPath)

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	successCount := 0
	errorCount := 0

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("ERROR - bad row: %v\n", err)
			errorCount++
			continue
		}

		title := strings.TrimSpace(row[0])
		author := strings.TrimSpace(row[1])
		year, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			fmt.Printf("ERROR - invalid year %q for %q\n", row[2], title)
			errorCount++
			continue
		}

		fmt.Printf("Importing: %s by %s... ", title, author)
		book, err := store.Add(title, author, year)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("SUCCESS (ID: %d)\n", book.ID)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	if successCount > 0 {
		books := store.List()
		fmt.Println("\nCatalog now contains:")
		fmt.Printf("%-12s %-50s %-30s\n", "ID", "Title", "Author")
		fmt.Println(strings.Repeat("-", 95))
		for _, b := range books {
			fmt.Printf("%-12d %-50s %-30s\n", b.ID, truncateString(b.Title, 50), truncateString(b.Author, 30))
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
