package extract

import (
	"fmt"
	"io"
	"os"
)

// copyBufferSize is the buffer used when copying entry bytes to disk.
const copyBufferSize = 64 * 1024

// WriteFileExcl copies r to a new file at path, failing if the file
// already exists. The exclusive create is what makes the collision
// resolver's uniqueness guarantee hold even under concurrent writers.
// Returns the number of bytes written.
func WriteFileExcl(path string, r io.Reader) (int64, error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	written, err := io.CopyBuffer(out, r, make([]byte, copyBufferSize))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return written, fmt.Errorf("write %s: %w", path, err)
	}
	return written, nil
}
