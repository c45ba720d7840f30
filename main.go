package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"book-catalog/catalog"
)

var storagePath string

func main() {
	cfg := LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "book-catalog",
		Short: "Personal library catalog manager",
		Long:  "Manages a personal book catalog stored in a local file.\nRun without a subcommand for the interactive menu.",
		Run: func(cmd *cobra.Command, args []string) {
			runMenu(catalog.Open(storagePath))
		},
	}
	root.PersistentFlags().StringVarP(&storagePath, "file", "f", cfg.StoragePath, "path to the catalog file")
	root.AddCommand(addCmd(), removeCmd(), searchCmd(), listCmd(), statusCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// ------------------ one-shot subcommands ------------------

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author> <year>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid year: %s", args[2])
			}
			book, err := catalog.Open(storagePath).Add(args[0], args[1], year)
			if err != nil {
				return err
			}
			fmt.Printf("Added book ID %d\n", book.ID)
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a book by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book ID: %s", args[0])
			}
			if err := catalog.Open(storagePath).Remove(id); err != nil {
				return err
			}
			fmt.Println("Book removed.")
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books := catalog.Open(storagePath).Search(args[0], field)
			if len(books) == 0 {
				fmt.Printf("No books found matching '%s'.\n", args[0])
				return nil
			}
			printBooks(books)
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "by", catalog.FieldTitle, "search field: title, author or year")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the whole catalog",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			handleList(catalog.Open(storagePath))
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <available|checked_out>",
		Short: "Change a book's availability status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book ID: %s", args[0])
			}
			if err := catalog.Open(storagePath).UpdateStatus(id, parseStatus(args[1])); err != nil {
				return err
			}
			fmt.Println("Status updated.")
			return nil
		},
	}
}

// parseStatus maps the CLI-friendly aliases onto the two stored literals.
// Unknown input passes through unchanged so the store's own validation is
// what rejects it.
func parseStatus(s string) catalog.Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "1":
		return catalog.StatusAvailable
	case "checked_out", "checked out", "2":
		return catalog.StatusCheckedOut
	}
	return catalog.Status(strings.TrimSpace(s))
}

// ------------------ interactive menu ------------------

func runMenu(store *catalog.Store) {
	sc := bufio.NewScanner(os.Stdin)
	// Menu text is noise when input is piped in.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		fmt.Println("Welcome to the book catalog manager!")
	}

	for {
		if interactive {
			fmt.Println("\n--- Book catalog ---")
			fmt.Println("1. Add a book")
			fmt.Println("2. Remove a book")
			fmt.Println("3. Search books")
			fmt.Println("4. Show all books")
			fmt.Println("5. Change book status")
			fmt.Println("6. Exit")
		}
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}

		switch strings.TrimSpace(sc.Text()) {
		case "1":
			handleAdd(sc, store)
		case "2":
			handleRemove(sc, store)
		case "3":
			handleSearch(sc, store)
		case "4":
			handleList(store)
		case "5":
			handleUpdateStatus(sc, store)
		case "6":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown choice. Enter a number from 1 to 6.")
		}
	}
}

func handleAdd(sc *bufio.Scanner, store *catalog.Store) {
	fmt.Print("Title: ")
	if !sc.Scan() {
		return
	}
	title := strings.TrimSpace(sc.Text())

	fmt.Print("Author: ")
	if !sc.Scan() {
		return
	}
	author := strings.TrimSpace(sc.Text())

	fmt.Print("Year: ")
	if !sc.Scan() {
		return
	}
	yearStr := strings.TrimSpace(sc.Text())
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Printf("Invalid year: %s\n", yearStr)
		return
	}

	book, err := store.Add(title, author, year)
	if err != nil {
		if errors.Is(err, catalog.ErrEntropyUnavailable) {
			fmt.Printf("Error adding book: %v\n", err)
			return
		}
		// The book is in the catalog but the file could not be written.
		fmt.Printf("Book added with ID %d, but saving failed: %v\n", book.ID, err)
		return
	}
	fmt.Printf("Book added. ID: %d\n", book.ID)
}

func handleRemove(sc *bufio.Scanner, store *catalog.Store) {
	fmt.Print("Book ID to remove: ")
	if !sc.Scan() {
		return
	}
	idStr := strings.TrimSpace(sc.Text())
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		fmt.Printf("Invalid book ID: %s\n", idStr)
		return
	}

	switch err := store.Remove(id); {
	case err == nil:
		fmt.Println("Book removed.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Println("Book not found.")
	default:
		fmt.Printf("Error removing book: %v\n", err)
	}
}

func handleSearch(sc *bufio.Scanner, store *catalog.Store) {
	fmt.Print("Search by (title/author/year): ")
	if !sc.Scan() {
		return
	}
	field := strings.TrimSpace(sc.Text())

	fmt.Print("Query: ")
	if !sc.Scan() {
		return
	}
	query := strings.TrimSpace(sc.Text())

	books := store.Search(query, field)
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	fmt.Printf("Found %d book(s):\n", len(books))
	printBooks(books)
}

func handleList(store *catalog.Store) {
	books := store.List()
	if len(books) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}
	printBooks(books)
}

func handleUpdateStatus(sc *bufio.Scanner, store *catalog.Store) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	idStr := strings.TrimSpace(sc.Text())
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		fmt.Printf("Invalid book ID: %s\n", idStr)
		return
	}

	fmt.Print("New status (available/checked_out): ")
	if !sc.Scan() {
		return
	}

	switch err := store.UpdateStatus(id, parseStatus(sc.Text())); {
	case err == nil:
		fmt.Println("Status updated.")
	case errors.Is(err, catalog.ErrInvalidStatus):
		fmt.Println("Invalid status. Use 'available' or 'checked_out'.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Println("Book not found.")
	default:
		fmt.Printf("Error updating status: %v\n", err)
	}
}

func printBooks(books []catalog.Book) {
	fmt.Printf("%-12s %-30s %-25s %-6s %s\n", "ID", "Title", "Author", "Year", "Status")
	fmt.Println(strings.Repeat("-", 90))
	for _, b := range books {
		fmt.Printf("%-12d %-30s %-25s %-6d %s\n",
			b.ID, truncateString(b.Title, 30), truncateString(b.Author, 25), b.Year, b.Status)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
