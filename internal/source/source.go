// Package source reads haystack and pattern files for the command line.
//
// Files are memory-mapped when possible via [mmapfile], falling back to
// [os.File] when mmap is unavailable or fails.
package source

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.dw1.io/mmapfile"

	"go.dw1.io/x/regexvec/pattern"
)

// NA is the line that stands for a missing element.
const NA = "NA"

// File is a read-only file backed by either a memory mapping or an os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "source: open %s", name)
	}

	return &File{os: f}, nil
}

// Bytes returns the mapped contents, or reads the whole file when it is not
// mapped.
func (f *File) Bytes() ([]byte, error) {
	if f.mm != nil {
		return f.mm.Bytes(), nil
	}

	return io.ReadAll(f.os)
}

// Close unmaps or closes the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// ReadLines returns one text per line of the named file. A line equal to
// [NA] is missing. A trailing newline does not add an empty element.
func ReadLines(name string) ([]pattern.Text, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := f.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "source: read %s", name)
	}

	return Lines(data)
}

// Lines splits data into texts, one per line. CRLF endings are accepted.
func Lines(data []byte) ([]pattern.Text, error) {
	var out []pattern.Text

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, max(bufio.MaxScanTokenSize, len(data)+1))
	for sc.Scan() {
		out = append(out, Parse(string(bytes.TrimSuffix(sc.Bytes(), []byte("\r")))))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "source: scan lines")
	}

	return out, nil
}

// Parse maps [NA] to the missing marker and anything else to a text.
func Parse(s string) pattern.Text {
	if s == NA {
		return pattern.Missing()
	}
	return pattern.Of(s)
}
