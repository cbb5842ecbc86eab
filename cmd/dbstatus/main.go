package main

// Probe the employees database once and print the db-status envelope:
//   go run ./cmd/dbstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"status-backend/internal/employees"
	"status-backend/internal/shared/config"
	"status-backend/internal/shared/storage/db"
	"status-backend/internal/status"
)

func main() {
	cfg := config.Load()
	repo := &employees.PGRepo{Connector: db.NewPerRequest(cfg.Database)}
	os.Exit(run(context.Background(), status.NewService(repo), os.Stdout))
}

func run(ctx context.Context, svc *status.Service, out io.Writer) int {
	code, body := status.Envelope(svc.CheckDatabase(ctx))
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	if code != http.StatusOK {
		return 1
	}
	return 0
}
