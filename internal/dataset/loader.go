package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"sync"
	"time"
)

// modSignature identifies a file revision. A table stays cached until the
// file's size or mtime changes.
type modSignature struct {
	size    int64
	modTime time.Time
}

type cachedTable struct {
	sig      modSignature
	table    *Table
	loadedAt time.Time
}

// Loader reads CSV files into Tables, validates required columns and caches
// by path + modification signature so repeated loads within a session never
// touch disk.
type Loader struct {
	mu     sync.RWMutex
	cache  map[string]cachedTable
	logger *log.Logger
	now    func() time.Time
}

func NewLoader(logger *log.Logger) *Loader {
	return &Loader{
		cache:  make(map[string]cachedTable),
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the validated table for path. Required columns are checked on
// every load; a file missing any of them never yields a partial table.
func (l *Loader) Load(path string, required ...string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}

	sig := modSignature{size: info.Size(), modTime: info.ModTime()}

	l.mu.RLock()
	entry, ok := l.cache[path]
	l.mu.RUnlock()
	if ok && entry.sig == sig {
		if err := checkColumns(entry.table, path, required); err != nil {
			return nil, err
		}
		return entry.table, nil
	}

	table, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(table, path, required); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = cachedTable{sig: sig, table: table, loadedAt: l.now().UTC()}
	l.mu.Unlock()

	if l.logger != nil {
		l.logger.Printf("dataset loaded | path=%s rows=%d cols=%d", path, table.Len(), len(table.Columns()))
	}
	return table, nil
}

// LoadedAt reports when the cached copy of path was read, if any.
func (l *Loader) LoadedAt(path string) (time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entry, ok := l.cache[path]
	if !ok {
		return time.Time{}, false
	}
	return entry.loadedAt, true
}

// Invalidate drops every cached table. The next Load re-reads disk.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cache = make(map[string]cachedTable)
	l.mu.Unlock()
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &EmptyDatasetError{Path: path}
		}
		return nil, err
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// Short rows pad out to the header width so Cell lookups stay safe.
		if len(record) < len(header) {
			padded := make([]string, len(header))
			copy(padded, record)
			record = padded
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, &EmptyDatasetError{Path: path}
	}
	return NewTable(header, rows), nil
}

func checkColumns(t *Table, path string, required []string) error {
	var missing []string
	for _, c := range required {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnError{Path: path, Columns: missing}
	}
	return nil
}
