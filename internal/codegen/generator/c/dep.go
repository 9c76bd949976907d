package cgen

import (
	"fmt"
	"io"

	"github.com/Alia5/makestatus/internal/statusxml"
)

// DepWriter streams a make-style dependency list of every resolved include.
type DepWriter struct {
	w      io.Writer
	target string
}

// NewDepWriter creates a DepWriter. When target is empty no rule target is
// written and the output is a bare continuation list.
func NewDepWriter(w io.Writer, target string) *DepWriter {
	return &DepWriter{w: w, target: target}
}

func (d *DepWriter) Begin() error {
	if d.target == "" {
		return nil
	}
	_, err := fmt.Fprintf(d.w, "%s:", d.target)
	return err
}

func (d *DepWriter) Status(int, statusxml.Status) error { return nil }

func (d *DepWriter) Include(path string) error {
	_, err := fmt.Fprintf(d.w, " \\\n %s", path)
	return err
}

func (d *DepWriter) End() error {
	_, err := io.WriteString(d.w, "\n")
	return err
}
