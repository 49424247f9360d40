// Package export writes the accumulated listings as a marketplace
// bulk-upload CSV file.
package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"disclot/internal/config"
	"disclot/internal/exportlog"
	"disclot/internal/logging"
	"disclot/internal/schema"
	"disclot/internal/template"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Result describes a completed export.
type Result struct {
	Path      string
	FileName  string
	ItemCount int
}

// Exporter writes upload files into the configured export directory and
// records them in the export ledger when one is attached.
type Exporter struct {
	cfg    *config.Config
	logger *slog.Logger
	ledger *exportlog.Ledger
	now    func() time.Time
}

// New constructs an exporter. The ledger is optional; without one exports
// still succeed, they just leave no history.
func New(cfg *config.Config, logger *slog.Logger, ledger *exportlog.Ledger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "export"),
		ledger: ledger,
		now:    time.Now,
	}
}

// Export writes rows to a new timestamped file and returns its location.
// Existing exports are never touched; a name collision within the same
// second gets a numeric suffix. An empty row set still produces a header-only
// file so the artifact chain stays complete.
func (e *Exporter) Export(ctx context.Context, rows []template.Row) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := e.cfg.EnsureDirectories(); err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		e.logger.Warn("exporting empty listing set; file will contain only the header row")
	}

	stamp := e.now().Format("20060102_150405")
	base := fmt.Sprintf("ebay_upload_%d_items_%s", len(rows), stamp)

	file, fileName, err := e.createExclusive(base)
	if err != nil {
		return Result{}, err
	}
	path := filepath.Join(e.cfg.Paths.ExportDir, fileName)

	if err := writeUploadFile(file, rows); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return Result{}, err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return Result{}, fmt.Errorf("close export file: %w", err)
	}

	result := Result{Path: path, FileName: fileName, ItemCount: len(rows)}
	e.recordInLedger(ctx, result)

	e.logger.Info("export written",
		slog.String("file", fileName),
		slog.Int("items", len(rows)))
	return result, nil
}

// createExclusive opens a fresh file under the export directory, suffixing
// the name when the unsuffixed one already exists.
func (e *Exporter) createExclusive(base string) (*os.File, string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		name := base + ".csv"
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.csv", base, attempt)
		}
		path := filepath.Join(e.cfg.Paths.ExportDir, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, name, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("create export file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create export file: no free name for %s", base)
}

func writeUploadFile(file *os.File, rows []template.Row) error {
	buffered := bufio.NewWriter(file)
	if _, err := buffered.Write(utf8BOM); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	writer := csv.NewWriter(buffered)
	if err := writer.Write(schema.Names()); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return file.Sync()
}

// recordInLedger appends the export to the history ledger. Ledger trouble
// never fails the export; the file on disk is the artifact that matters.
func (e *Exporter) recordInLedger(ctx context.Context, result Result) {
	if e.ledger == nil {
		return
	}
	if _, err := e.ledger.Record(ctx, result.FileName, result.Path, result.ItemCount); err != nil {
		e.logger.Warn("export succeeded but ledger update failed",
			slog.String("file", result.FileName),
			slog.Any("error", err))
	}
}
