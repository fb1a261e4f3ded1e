package extract

import (
	"compress/flate"
	"compress/gzip"
	"errors"
	"fmt"

	zip "github.com/klauspost/compress/zip"
	"github.com/mholt/archives"
)

// ErrInvalidContainer signals that an input file could not be parsed as an
// archive container at all, as opposed to an error that occurred midway
// through reading a well-formed one. Callers test with errors.Is.
var ErrInvalidContainer = errors.New("not a valid archive container")

// classify maps low-level parse failures from the container and
// decompression layers onto ErrInvalidContainer; everything else passes
// through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, archives.NoMatch) ||
		errors.Is(err, zip.ErrFormat) ||
		errors.Is(err, gzip.ErrHeader) ||
		isCorruptFlate(err) {
		return fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	return err
}

func isCorruptFlate(err error) bool {
	var ce flate.CorruptInputError
	return errors.As(err, &ce)
}
