package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"chappy/keys"
	"chappy/repositories"
	"chappy/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// inspect prints the records of a chappy badger directory, read-only.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Partition key prefix to scan, e.g. CHANNEL#general or DM#")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	store := storage.NewBadgerStore(db, slog.Default())
	items, err := store.Scan(func(pk keys.PartitionKey, _ keys.SortKey) bool {
		return strings.HasPrefix(string(pk), *prefix)
	})
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Partition", "Sort", "Type", "Created", "Author", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, item := range items {
		record, err := repositories.Describe(item)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s/%s: %v\n", item.Partition, item.Sort, err)
			continue
		}
		table.Append([]string{
			printable(string(item.Partition)),
			string(item.Sort),
			record.Kind,
			record.Created,
			record.Author,
			record.Detail,
		})
	}
	table.Render()
	fmt.Printf("%d record(s)\n", len(items))
}

// printable shows the DM pair separator.
func printable(key string) string {
	return strings.ReplaceAll(key, "\x1f", "|")
}
