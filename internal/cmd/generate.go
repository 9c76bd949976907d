package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/makestatus/internal/codegen/generator"
	cgen "github.com/Alia5/makestatus/internal/codegen/generator/c"
	"github.com/Alia5/makestatus/internal/configpaths"
)

// Generate writes the QStatus header, its source file and a dependency list.
type Generate struct {
	Input         string `arg:"" name:"input" help:"Root status XML document" type:"existingfile"`
	Prefix        string `help:"Prefix of the generated QCC_<prefix>StatusText function" env:"MAKESTATUS_PREFIX"`
	Base          string `help:"Base directory for resolving include hrefs (defaults to the input's directory)" type:"path" env:"MAKESTATUS_BASE"`
	Header        string `help:"Header output path" type:"path" env:"MAKESTATUS_HEADER"`
	Code          string `help:"Source output path" type:"path" env:"MAKESTATUS_CODE"`
	Dep           string `help:"Dependency file output path" type:"path" env:"MAKESTATUS_DEP"`
	DepTarget     string `help:"Rule target written to the dependency file (defaults to the header and code outputs)" env:"MAKESTATUS_DEP_TARGET"`
	HeaderInclude string `help:"Header name included by the generated source" default:"Status.h" env:"MAKESTATUS_HEADER_INCLUDE"`
	LicenseFile   string `help:"File whose contents replace the default license preamble" type:"path" env:"MAKESTATUS_LICENSE_FILE"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) (err error) {
	license, err := cgen.LoadLicense(g.LicenseFile)
	if err != nil {
		return err
	}

	var files []*os.File
	defer func() {
		for _, f := range files {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", f.Name(), cerr)
			}
		}
	}()
	create := func(path string) (*os.File, error) {
		if err := configpaths.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		files = append(files, f)
		return f, nil
	}

	var emitters []generator.Emitter
	if g.Header != "" {
		f, err := create(g.Header)
		if err != nil {
			return err
		}
		emitters = append(emitters, cgen.NewHeaderWriter(f, g.Prefix, license))
	}
	if g.Code != "" {
		f, err := create(g.Code)
		if err != nil {
			return err
		}
		emitters = append(emitters, cgen.NewSourceWriter(f, g.Prefix, license, g.headerInclude()))
	}
	if g.Dep != "" {
		f, err := create(g.Dep)
		if err != nil {
			return err
		}
		emitters = append(emitters, cgen.NewDepWriter(f, g.depTarget()))
	}
	if len(emitters) == 0 {
		logger.Warn("No outputs selected, only validating input", "input", g.Input)
	}

	logger.Info("Generating status table", "input", g.Input, "prefix", g.Prefix)
	summary, err := generator.New(g.baseDir(), logger, emitters...).Run(g.Input)
	if err != nil {
		return fmt.Errorf("generate status table from %s: %w", g.Input, err)
	}

	logger.Info("Status table generation complete",
		"entries", summary.Entries,
		"blocks", summary.Blocks,
		"includes", len(summary.Includes))
	return nil
}

func (g *Generate) baseDir() string {
	if g.Base != "" {
		return g.Base
	}
	return filepath.Dir(g.Input)
}

// headerInclude falls back to cgen.DefaultHeaderInclude when the configured
// name is blank.
func (g *Generate) headerInclude() string {
	if h := strings.TrimSpace(g.HeaderInclude); h != "" {
		return h
	}
	return cgen.DefaultHeaderInclude
}

func (g *Generate) depTarget() string {
	if g.DepTarget != "" {
		return g.DepTarget
	}
	var targets []string
	for _, p := range []string{g.Header, g.Code} {
		if p != "" {
			targets = append(targets, p)
		}
	}
	return strings.Join(targets, " ")
}
