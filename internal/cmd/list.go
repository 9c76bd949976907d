package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/makestatus/internal/codegen/generator"
	"github.com/Alia5/makestatus/internal/statusxml"
)

// List prints the flattened status table of a document tree.
type List struct {
	Input  string `arg:"" name:"input" help:"Root status XML document" type:"existingfile"`
	Base   string `help:"Base directory for resolving include hrefs (defaults to the input's directory)" type:"path" env:"MAKESTATUS_BASE"`
	Format string `help:"Output format" enum:"table,json,yaml,toml" default:"table"`

	Out io.Writer `kong:"-"`
}

type statusTable struct {
	Includes []string           `json:"includes" yaml:"includes" toml:"includes"`
	Status   []statusxml.Status `json:"status" yaml:"status" toml:"status"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	base := l.Base
	if base == "" {
		base = filepath.Dir(l.Input)
	}

	var col generator.Collector
	if _, err := generator.New(base, logger, &col).Run(l.Input); err != nil {
		return fmt.Errorf("list status table from %s: %w", l.Input, err)
	}

	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	return renderTable(out, l.Format, statusTable{Includes: col.Includes, Status: col.Entries})
}

func renderTable(w io.Writer, format string, t statusTable) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(t, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(t)
	case "toml":
		data, err = toml.Marshal(t)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVALUE\tCOMMENT")
		for _, s := range t.Status {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Value, s.Comment)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
