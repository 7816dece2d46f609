// Package migration creates the tables the fulfillment engine owns. The order and
// order_line tables belong to the order service and are only read.
package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/utils/logger"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var files embed.FS

// Apply runs every embedded script in file name order. Scripts only use
// CREATE ... IF NOT EXISTS, so applying twice is harmless.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		for i, stmt := range splitStatements(string(raw)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%s statement %d: %w", name, i+1, err)
			}
		}
		logger.Info("[Migration] applied", zap.String("file", name))
	}
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
