package namelist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// Writer stamps namelists with a run UUID and writes them to Dir.
type Writer struct {
	Dir    string
	Format Format
	// Dump receives a human-readable dump of each namelist before it is
	// written. Nil disables the dump.
	Dump io.Writer

	newID func() string
}

// NewWriter returns a Writer that writes into dir.
func NewWriter(dir string, format Format, dump io.Writer) *Writer {
	return &Writer{
		Dir:    dir,
		Format: format,
		Dump:   dump,
		newID:  uuid.NewString,
	}
}

// Write validates n, assigns n.Meta.UUID, and writes n to
// <Dir>/<simname>.in, creating or truncating it. It returns the path written.
// Nothing is created when validation or encoding fails.
func (w *Writer) Write(n *Namelist) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}

	newID := w.newID
	if newID == nil {
		newID = uuid.NewString
	}
	n.Meta.UUID = newID()
	logrus.Debugf("assigned uuid %s to %s", n.Meta.UUID, n.Meta.SimName)

	if w.Dump != nil {
		if _, err := pretty.Fprintf(w.Dump, "%# v\n", n); err != nil {
			return "", fmt.Errorf("dumping namelist: %w", err)
		}
	}

	format := w.Format
	if format == "" {
		format = FormatJSON
	}
	data, err := marshal(n, format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, n.FileName())
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	logrus.Infof("wrote namelist %s", path)
	return path, nil
}

func writeFile(path string, data []byte) (err error) {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if _, err := fh.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
