package rawarray

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes the array to w: header first, then the data buffer
// verbatim, with no padding on either side. Any I/O failure aborts and
// surfaces the underlying error; no partial-output cleanup is attempted,
// so a failure mid-write leaves a truncated, invalid stream behind.
func Encode(w io.Writer, a *Array) error {
	if err := a.Header().Encode(w); err != nil {
		return err
	}
	if _, err := w.Write(a.data); err != nil {
		return fmt.Errorf("failed to write data segment: %w", err)
	}
	return nil
}

// WriteFile writes the array to a file at path, creating or replacing it.
func WriteFile(path string, a *Array) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, a); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return f.Close()
}
