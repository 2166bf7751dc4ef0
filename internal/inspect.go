// Package internal hosts the operator-facing store inspector: a read-only
// HTML view over the raw BadgerDB collections, served next to (or instead
// of) the gRPC server.
package internal

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one rendered store entry.
type InspectRow struct {
	Key        string
	Collection string
	EntityID   string
	Detail     string
	Timestamp  string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves the inspect page on its own port. The page walks
// keys under ?prefix= (a collection namespace like "rooms:") and renders
// each entry through the mapper.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "rooms:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper renders a raw entry from its "<collection>:<key>" layout.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:        key,
		Collection: "unknown",
		EntityID:   key,
		Detail:     "Size: " + strconv.Itoa(len(val)) + " bytes",
		Timestamp:  "--:--:--",
	}
	if collection, rest, found := strings.Cut(key, ":"); found {
		row.Collection = collection
		row.EntityID = rest
	}
	if len(row.EntityID) > 12 {
		row.EntityID = row.EntityID[:12]
	}
	return row
}
