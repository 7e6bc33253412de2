package layout

import (
	"io"
	"os"

	"github.com/gridboard/gridboard/pkg/errors"
)

// Write encodes the snapshot and writes it to w.
// The output can be re-read with [Read] for round-trip processing.
func Write(s *Snapshot, w io.Writer) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "write snapshot %q", s.Name)
	}
	return nil
}

// Read decodes a snapshot from r using the lenient wire format.
func Read(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read snapshot")
	}
	return Decode(data)
}

// ExportFile writes a snapshot to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based export.
func ExportFile(s *Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "create %s", path)
	}
	defer f.Close()
	return Write(s, f)
}

// ImportFile reads a snapshot from a JSON file at path.
func ImportFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
