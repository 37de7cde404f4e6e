// Package textfile loads sample texts for the benchmark command.
//
// Files are memory-mapped read-only, so a large corpus costs no heap copy
// until a search needs runes. Every text carries an xxhash fingerprint so two
// benchmark reports can be checked to describe the same input.
package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
)

// ErrNotRegular is returned when the path is a directory or a device.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Text is a loaded sample text. Data must not be modified and must not be
// used after Close.
type Text struct {
	Name        string
	Data        []byte
	Fingerprint uint64

	mmap   mmap.MMap
	closed atomic.Bool
}

// Open memory-maps the file at path. The file descriptor is closed before
// Open returns; the mapping stays valid until Close.
func Open(ctx context.Context, path string) (*Text, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat text file: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	name := filepath.Base(path)
	// A zero-length file cannot be mapped.
	if stat.Size() == 0 {
		return FromBytes(name, nil), nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap text file: %w", err)
	}

	return &Text{
		Name:        name,
		Data:        []byte(mm),
		Fingerprint: xxhash.Sum64(mm),
		mmap:        mm,
	}, nil
}

// FromBytes wraps in-memory data; Close is a no-op.
func FromBytes(name string, data []byte) *Text {
	return &Text{
		Name:        name,
		Data:        data,
		Fingerprint: xxhash.Sum64(data),
	}
}

// Len returns the size of the text in bytes.
func (t *Text) Len() int {
	return len(t.Data)
}

// Close releases the mapping. It is safe to call more than once.
func (t *Text) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	t.Data = nil
	if t.mmap != nil {
		return t.mmap.Unmap()
	}

	return nil
}
