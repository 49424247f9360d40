package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"disclot/internal/config"
	"disclot/internal/exportlog"
	"disclot/internal/listing"
	"disclot/internal/schema"
	"disclot/internal/template"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func sampleRows(t *testing.T, cfg *config.Config, titles ...string) []template.Row {
	t.Helper()
	resolver := listing.NewResolver(cfg)
	rows := make([]template.Row, 0, len(titles))
	for _, title := range titles {
		rec, err := resolver.Resolve(listing.Partial{
			MovieTitle:     title,
			SuggestedPrice: 9.99,
			PhotoRefs:      []string{"https://img.example/disc.jpg"},
		}, nil)
		if err != nil {
			t.Fatalf("resolve %s: %v", title, err)
		}
		rows = append(rows, template.BuildRow(&rec, cfg))
	}
	return rows
}

func fixedClock(t *testing.T, e *Exporter, at time.Time) {
	t.Helper()
	e.now = func() time.Time { return at }
}

func TestExportWritesTimestampedUploadFile(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg, nil, nil)
	fixedClock(t, e, time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC))

	rows := sampleRows(t, cfg, "Alien", "Blade Runner")
	result, err := e.Export(context.Background(), rows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.FileName != "ebay_upload_2_items_20260901_143005.csv" {
		t.Fatalf("file name = %s", result.FileName)
	}
	if result.ItemCount != 2 {
		t.Fatalf("item count = %d", result.ItemCount)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "\xEF\xBB\xBF") {
		t.Error("export missing UTF-8 BOM")
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("line count = %d, want header + 2 rows", len(records))
	}
	if records[0][0] != schema.ColAction {
		t.Errorf("header starts with %q", records[0][0])
	}
	if len(records[1]) != schema.Count() {
		t.Errorf("row width = %d, want %d", len(records[1]), schema.Count())
	}
}

func TestExportIsIdempotentAndNonDestructive(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg, nil, nil)
	fixedClock(t, e, time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC))

	rows := sampleRows(t, cfg, "Alien")
	first, err := e.Export(context.Background(), rows)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := e.Export(context.Background(), rows)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if first.Path == second.Path {
		t.Fatal("second export reused the first file name")
	}
	if second.FileName != "ebay_upload_1_items_20260901_143005_1.csv" {
		t.Fatalf("collision suffix name = %s", second.FileName)
	}

	a, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	b, err := os.ReadFile(second.Path)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if string(a) != string(b) {
		t.Error("repeated export of unchanged rows produced different content")
	}
}

func TestExportEmptyStoreWritesHeaderOnly(t *testing.T) {
	cfg := testConfig(t)
	e := New(cfg, nil, nil)
	fixedClock(t, e, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	result, err := e.Export(context.Background(), nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.FileName != "ebay_upload_0_items_20260901_090000.csv" {
		t.Fatalf("file name = %s", result.FileName)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 1 {
		t.Errorf("line count = %d, want header only", lines)
	}
}

func TestExportRecordsLedgerEntry(t *testing.T) {
	cfg := testConfig(t)
	ledger, err := exportlog.Open(cfg)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer ledger.Close()

	e := New(cfg, nil, ledger)
	rows := sampleRows(t, cfg, "Alien")
	result, err := e.Export(context.Background(), rows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	entries, err := ledger.List(context.Background())
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(entries))
	}
	if entries[0].FileName != result.FileName {
		t.Errorf("ledger file = %s, want %s", entries[0].FileName, result.FileName)
	}
	if entries[0].ItemCount != 1 {
		t.Errorf("ledger count = %d", entries[0].ItemCount)
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.ExportDir, result.FileName)); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
