package internal

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chappy/keys"
	"chappy/repositories"
	"chappy/storage"
)

var inspectTemplate = template.Must(template.New("inspect").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>chappy store</title>
<style>body{font-family:monospace}td{padding:2px 12px;border-bottom:1px solid #ddd}</style></head>
<body>
<form><input name="prefix" value="{{.Prefix}}" placeholder="CHANNEL#name"> <button>scan</button></form>
<p>{{len .Rows}} record(s)</p>
<table>
<tr><th>Partition</th><th>Sort</th><th>Type</th><th>Created</th><th>Author</th><th>Detail</th></tr>
{{range .Rows}}<tr><td>{{.Partition}}</td><td>{{.Sort}}</td><td>{{.Kind}}</td><td>{{.Created}}</td><td>{{.Author}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
</body></html>`))

type InspectRow struct {
	Partition string
	Sort      string
	repositories.Record
}

type PageData struct {
	Prefix string
	Rows   []InspectRow
}

// InspectHandler renders the records whose partition key starts with the
// "prefix" query parameter.
func InspectHandler(log *slog.Logger, store storage.KeyedStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		items, err := store.Scan(func(pk keys.PartitionKey, _ keys.SortKey) bool {
			return strings.HasPrefix(string(pk), prefix)
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		data := PageData{Prefix: prefix, Rows: make([]InspectRow, 0, len(items))}
		for _, item := range items {
			record, err := repositories.Describe(item)
			if err != nil {
				log.Warn("undecodable record", "partition", item.Partition, "sort", item.Sort, "error", err)
				record = repositories.Record{Kind: "CORRUPT", Detail: err.Error()}
			}
			data.Rows = append(data.Rows, InspectRow{
				Partition: strings.ReplaceAll(string(item.Partition), "\x1f", "|"),
				Sort:      string(item.Sort),
				Record:    record,
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = inspectTemplate.Execute(w, data)
	})
}

// StartDebugServer serves the store inspector on localhost until ctx is done.
func StartDebugServer(ctx context.Context, log *slog.Logger, store storage.KeyedStore, port int, endpoint string) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, InspectHandler(log, store))
	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("debug server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
}
