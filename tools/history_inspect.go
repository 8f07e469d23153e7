package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"tokenbag/domain"
)

// Standalone inspector for the draw ledger. Opens the database read-only,
// so it can run next to a live server without stealing the lock.
func main() {
	dbPath := flag.String("db", "/tmp/tokenbag", "Path to badger DB")
	room := flag.String("room", "", "Restrict to one room id")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	prefix := "draw:"
	if *room != "" {
		prefix = fmt.Sprintf("draw:%s:", *room)
	}

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" Draw ledger "))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timestamp", "Room", "Player", "Tokens", "S", "C", "Mode"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			err := item.Value(func(v []byte) error {
				var record domain.HistoryRecord
				if err := json.Unmarshal(v, &record); err != nil {
					// A bad row should not stop the whole scan
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append(rowFor(record))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}

func rowFor(record domain.HistoryRecord) []string {
	tokens := make([]string, 0, len(record.Drawn))
	for _, token := range record.Drawn {
		tokens = append(tokens, string(token))
	}

	return []string{
		record.At.Format("2006-01-02 15:04:05"),
		string(record.Room),
		record.PlayerName,
		strings.Join(tokens, ","),
		fmt.Sprintf("%d", record.Successes),
		fmt.Sprintf("%d", record.Complications),
		modeFor(record),
	}
}

func modeFor(record domain.HistoryRecord) string {
	switch {
	case record.RiskAll:
		return color.Red.Render("risk-all")
	case record.Adrenaline && record.Confusion:
		return "adrenaline+confusion"
	case record.Adrenaline:
		return "adrenaline"
	case record.Confusion:
		return "confusion"
	default:
		return "plain"
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
