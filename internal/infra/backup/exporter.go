package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables is the export order; parents come before the rows that reference them.
var Tables = []string{
	"accounts",
	"salons",
	"appointments",
	"system_settings",
	"backup_logs",
	"login_logs",
	"notification_jobs",
	"idempotency_keys",
}

// copier streams COPY ... TO STDOUT output into w.
type copier interface {
	CopyTo(ctx context.Context, w io.Writer, sql string) (pgconn.CommandTag, error)
}

type Exporter struct {
	pool *pgxpool.Pool
	dir  string
}

func NewExporter(pool *pgxpool.Pool, cfg config.BackupConfig) *Exporter {
	return &Exporter{pool: pool, dir: cfg.Dir}
}

// Export writes one CSV per table under <dir>/<backupName> and returns the total bytes written.
func (e *Exporter) Export(ctx context.Context, backupName string) (int64, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "acquire connection for backup")
	}
	defer conn.Release()

	return exportTables(ctx, conn.Conn().PgConn(), filepath.Join(e.dir, backupName), Tables)
}

func exportTables(ctx context.Context, c copier, dir string, tables []string) (int64, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, errs.Wrap(err, "create backup directory")
	}

	var total int64
	for _, table := range tables {
		n, err := exportTable(ctx, c, filepath.Join(dir, table+".csv"), table)
		total += n
		if err != nil {
			return total, errs.Wrapf(err, "export %s", table)
		}
	}

	slog.InfoContext(ctx, "backup exported", "dir", dir, "tables", len(tables), "bytes", total)
	return total, nil
}

func exportTable(ctx context.Context, c copier, path, table string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	w := &countingWriter{w: f}
	_, copyErr := c.CopyTo(ctx, w, fmt.Sprintf("COPY %s TO STDOUT WITH CSV HEADER", table))
	closeErr := f.Close()
	if copyErr != nil {
		return w.n, copyErr
	}
	return w.n, closeErr
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
