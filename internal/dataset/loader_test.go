package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const occupationsCSV = "project_id,project_title,industry_cat_label\n" +
	"P1,Grid Upgrade,Energy\n" +
	"P1,Grid Upgrade,Energy\n" +
	"P2,Irrigation,Water\n"

func TestLoader_Load_Success(t *testing.T) {
	path := writeFile(t, t.TempDir(), "occ.csv", occupationsCSV)

	l := NewLoader(nil)
	table, err := l.Load(path, "project_id", "industry_cat_label")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}
	if got := table.Cell(2, "industry_cat_label"); got != "Water" {
		t.Fatalf("expected Water, got %q", got)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.Load(filepath.Join(t.TempDir(), "nope.csv"))

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
}

func TestLoader_Load_MissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "occ.csv", occupationsCSV)

	l := NewLoader(nil)
	table, err := l.Load(path, "project_id", "esco_id", "short_summary")

	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if table != nil {
		t.Fatalf("expected no partial table")
	}
	if want := []string{"esco_id", "short_summary"}; !reflect.DeepEqual(missing.Columns, want) {
		t.Fatalf("expected missing %v, got %v", want, missing.Columns)
	}
}

func TestLoader_Load_EmptyDataset(t *testing.T) {
	dir := t.TempDir()

	headerOnly := writeFile(t, dir, "header.csv", "a,b,c\n")
	l := NewLoader(nil)
	if _, err := l.Load(headerOnly); err == nil {
		t.Fatalf("expected error for header-only file")
	} else {
		var empty *EmptyDatasetError
		if !errors.As(err, &empty) {
			t.Fatalf("expected EmptyDatasetError, got %v", err)
		}
	}

	blank := writeFile(t, dir, "blank.csv", "")
	if _, err := l.Load(blank); err == nil {
		t.Fatalf("expected error for blank file")
	} else {
		var empty *EmptyDatasetError
		if !errors.As(err, &empty) {
			t.Fatalf("expected EmptyDatasetError, got %v", err)
		}
	}
}

func TestLoader_Load_CachesByModSignature(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "occ.csv", occupationsCSV)

	l := NewLoader(nil)
	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	again, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first != again {
		t.Fatalf("expected cached table on unchanged file")
	}

	// Rewrite with different content and a different mtime.
	writeFile(t, dir, "occ.csv", occupationsCSV+"P3,Roads,Transport\n")
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	reloaded, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reloaded == first {
		t.Fatalf("expected reload after file change")
	}
	if reloaded.Len() != 4 {
		t.Fatalf("expected 4 rows after reload, got %d", reloaded.Len())
	}
}

func TestLoader_Load_PadsShortRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "short.csv", "a,b,c\n1,2,3\n4\n")

	l := NewLoader(nil)
	table, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := table.Cell(1, "c"); got != "" {
		t.Fatalf("expected empty cell, got %q", got)
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "occ.csv", occupationsCSV)

	l := NewLoader(nil)
	table, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out, err := ExportCSV(table)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	reloadedPath := writeFile(t, dir, "reloaded.csv", string(out))
	reloaded, err := l.Load(reloadedPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if !reflect.DeepEqual(reloaded.Columns(), table.Columns()) {
		t.Fatalf("column order changed: %v vs %v", reloaded.Columns(), table.Columns())
	}
	if reloaded.Len() != table.Len() {
		t.Fatalf("row count changed: %d vs %d", reloaded.Len(), table.Len())
	}
	for i := 0; i < table.Len(); i++ {
		if !reflect.DeepEqual(reloaded.Row(i), table.Row(i)) {
			t.Fatalf("row %d changed: %v vs %v", i, reloaded.Row(i), table.Row(i))
		}
	}
}

func TestTable_Select_RenamesAndProjects(t *testing.T) {
	table := NewTable(
		[]string{"occupation_esco", "onet_job_zone_label", "extra"},
		[][]string{{"electrician", "Job Zone Three", "x"}},
	)

	view := table.Select(
		[]string{"occupation_esco", "onet_job_zone_label"},
		map[string]string{"occupation_esco": "Occupation (ESCO)", "onet_job_zone_label": "Preparation Level (O*NET)"},
	)

	want := []string{"Occupation (ESCO)", "Preparation Level (O*NET)"}
	if !reflect.DeepEqual(view.Columns(), want) {
		t.Fatalf("expected %v, got %v", want, view.Columns())
	}
	if got := view.Cell(0, "Occupation (ESCO)"); got != "electrician" {
		t.Fatalf("unexpected cell %q", got)
	}
}

func TestTable_Slice_ClampsBounds(t *testing.T) {
	table := NewTable([]string{"a"}, [][]string{{"1"}, {"2"}, {"3"}})

	if got := table.Slice(0, 2).Len(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := table.Slice(2, 10).Len(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := table.Slice(5, 10).Len(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
