// Package extract opens archive containers, iterates their entries, and
// materializes entry bytes as new files. Container handling is delegated
// to github.com/mholt/archives, so zip and tar.gz inputs behave the same.
package extract

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// Entry is one file (or directory marker) inside an archive.
type Entry struct {
	info archives.FileInfo
}

// Path returns the entry's archive-internal path.
func (e Entry) Path() string { return e.info.NameInArchive }

// IsDir reports whether the entry represents a directory.
func (e Entry) IsDir() bool { return e.info.IsDir() }

// Size returns the entry's uncompressed size in bytes.
func (e Entry) Size() int64 { return e.info.Size() }

// Open returns a reader over the entry's content. The caller must close it.
func (e Entry) Open() (fs.File, error) { return e.info.Open() }

// Walk opens the archive at archivePath and calls fn for every entry in
// container-native order. An unparseable container yields an error wrapping
// [ErrInvalidContainer]; any error returned by fn aborts the walk and is
// returned to the caller.
func Walk(ctx context.Context, archivePath string, fn func(Entry) error) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer file.Close()

	extractor, input, err := identify(ctx, archivePath, file)
	if err != nil {
		return err
	}

	err = extractor.Extract(ctx, input, func(ctx context.Context, info archives.FileInfo) error {
		return fn(Entry{info: info})
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// CountEntries returns the number of entries in the archive. It performs a
// full iteration pass, so it is only worth the extra I/O when the count
// feeds a progress display.
func CountEntries(ctx context.Context, archivePath string) (int, error) {
	count := 0
	err := Walk(ctx, archivePath, func(Entry) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// identify resolves the container format of the open archive file and
// returns an extractor together with the positioned input stream.
func identify(ctx context.Context, archivePath string, file *os.File) (archives.Extractor, io.Reader, error) {
	format, input, err := archives.Identify(ctx, filepath.Base(archivePath), file)
	if err != nil {
		return nil, nil, classify(err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(archivePath), ErrInvalidContainer)
	}
	return extractor, input, nil
}
