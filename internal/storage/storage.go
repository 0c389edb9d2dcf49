// Package storage reads raw user files and writes cleaned ones.
//
// Reads never fail: a missing, unreadable, malformed or non-array input is
// logged as a warning and yields an empty collection. Writes log the cause of
// a failure and return it.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"userclean/internal/config"
	"userclean/internal/logger"
	"userclean/internal/models"
	"userclean/internal/store"
)

// Storage errors.
var (
	ErrNotArray          = errors.New("input is not a JSON array")
	ErrTrailingData      = errors.New("unexpected data after JSON array")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Files reads and writes record files, synchronously or with the read/write
// running alongside JSON decoding/encoding.
type Files struct {
	log    *logger.Logger
	async  bool
	pretty bool
}

// Option configures Files.
type Option func(*Files)

// WithAsync selects the asynchronous I/O strategy.
func WithAsync(async bool) Option {
	return func(f *Files) { f.async = async }
}

// WithPrettyPrint controls indentation of JSON array output.
func WithPrettyPrint(pretty bool) Option {
	return func(f *Files) { f.pretty = pretty }
}

// New creates a Files with pretty-printed synchronous I/O unless overridden.
func New(log *logger.Logger, opts ...Option) *Files {
	f := &Files{log: log, pretty: true}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Async reports whether the asynchronous strategy is in use.
func (f *Files) Async() bool {
	return f.async
}

// ReadRaw reads a JSON array of raw records from path.
func (f *Files) ReadRaw(ctx context.Context, path string) []models.RawRecord {
	records, err := readFile(ctx, path, f.async, decodeArray[models.RawRecord])
	if err != nil {
		f.log.Warn("could not read input, treating it as empty", "path", path, "async", f.async, "error", err)
		return []models.RawRecord{}
	}

	return records
}

// WriteRaw writes records to path as a JSON array, creating parent directories
// as needed.
func (f *Files) WriteRaw(ctx context.Context, path string, records []models.RawRecord) error {
	if records == nil {
		records = []models.RawRecord{}
	}

	err := f.create(ctx, path, func(w io.Writer) error { return encodeArray(w, records, f.pretty) })
	if err != nil {
		f.log.Error("failed to write output", "path", path, "async", f.async, "error", err)
		return err
	}

	f.log.Info("wrote output", "path", path, "records", len(records))

	return nil
}

// ReadNormalized reads cleaned records written by WriteNormalized in the given format.
func (f *Files) ReadNormalized(ctx context.Context, path, format string) []models.NormalizedRecord {
	var (
		records []models.NormalizedRecord
		err     error
	)

	switch format {
	case config.FormatJSON, "":
		records, err = readFile(ctx, path, f.async, decodeArray[models.NormalizedRecord])
	case config.FormatJSONL:
		records, err = readFile(ctx, path, f.async, decodeLines[models.NormalizedRecord])
	case config.FormatSQLite:
		records, err = loadSQLite(ctx, path)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		f.log.Warn("could not read cleaned records, treating them as empty", "path", path, "format", format, "error", err)
		return []models.NormalizedRecord{}
	}

	return records
}

// WriteNormalized writes records to path in the given format, creating parent
// directories as needed.
func (f *Files) WriteNormalized(ctx context.Context, path, format string, records []models.NormalizedRecord) error {
	if records == nil {
		records = []models.NormalizedRecord{}
	}

	err := f.write(ctx, path, format, records)
	if err != nil {
		f.log.Error("failed to write output", "path", path, "format", format, "async", f.async, "error", err)
		return err
	}

	f.log.Info("wrote output", "path", path, "format", format, "records", len(records))

	return nil
}

func (f *Files) write(ctx context.Context, path, format string, records []models.NormalizedRecord) error {
	var encode func(io.Writer) error

	switch format {
	case config.FormatJSON, "":
		encode = func(w io.Writer) error { return encodeArray(w, records, f.pretty) }
	case config.FormatJSONL:
		encode = func(w io.Writer) error { return encodeLines(w, records) }
	case config.FormatSQLite:
		if err := mkdirParent(path); err != nil {
			return err
		}

		return saveSQLite(ctx, path, records)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return f.create(ctx, path, encode)
}

func (f *Files) create(ctx context.Context, path string, encode func(io.Writer) error) error {
	if err := mkdirParent(path); err != nil {
		return err
	}

	return writeFile(ctx, path, f.async, encode)
}

func mkdirParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// readFile loads path and decodes it. In async mode the file is streamed
// through a pipe so decoding overlaps with the read.
func readFile[T any](ctx context.Context, path string, async bool, decode func(io.Reader) ([]T, error)) ([]T, error) {
	if !async {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return decode(bytes.NewReader(data))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	pr, pw := io.Pipe()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := io.Copy(pw, contextReader{ctx: gctx, r: file})
		pw.CloseWithError(err)

		return err
	})

	var records []T

	g.Go(func() error {
		var err error
		records, err = decode(pr)
		pr.CloseWithError(err)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// writeFile creates path and encodes into it. In async mode encoding runs in
// its own goroutine and streams into the file writer through a pipe.
func writeFile(ctx context.Context, path string, async bool, encode func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if !async {
		return encode(file)
	}

	pr, pw := io.Pipe()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := encode(pw)
		pw.CloseWithError(err)

		return err
	})

	g.Go(func() error {
		_, err := io.Copy(file, contextReader{ctx: gctx, r: pr})
		pr.CloseWithError(err)

		return err
	})

	return g.Wait()
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}

func decodeArray[T any](r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrNotArray
	}

	records := []T{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func decodeLines[T any](r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)
	records := []T{}

	for {
		var rec T

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
}

func encodeArray[T any](w io.Writer, records []T, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(records)
}

func encodeLines[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	return nil
}

func saveSQLite(ctx context.Context, path string, records []models.NormalizedRecord) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.SaveRecords(ctx, records)
}

func loadSQLite(ctx context.Context, path string) ([]models.NormalizedRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.LoadRecords(ctx)
}
