package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Alia5/makestatus/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"generate,list"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to makestatus.<format> in the current directory)"`
	Global  bool   `help:"Write into the user configuration directory instead of the current directory"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template dynamically via reflection of the command structs and tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	var flags map[string]any
	switch c.Command {
	case "generate":
		flags = configFlags(reflect.TypeOf(Generate{}), "")
	case "list":
		flags = configFlags(reflect.TypeOf(List{}), "")
	default:
		return errors.New("unknown command; expected 'generate' or 'list'")
	}
	root := layoutConfig(format, c.Command, flags)

	dest, err := c.destination(format)
	if err != nil {
		return err
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := encodeConfig(format, root)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func (c *ConfigInit) destination(format string) (string, error) {
	switch {
	case c.Output != "":
		return c.Output, nil
	case c.Global:
		return configpaths.DefaultNamedConfigPath("config", format)
	default:
		return configpaths.BaseName + "." + configpaths.Ext(format), nil
	}
}

func encodeConfig(format string, root map[string]any) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// layoutConfig arranges flag values the way the matching kong loader resolves
// them. kong.JSON looks up flat snake_case keys, kong-yaml expects the flags
// of a command nested under the command name, and kong-toml rejects any key
// that is not a flag name.
func layoutConfig(format, command string, flags map[string]any) map[string]any {
	switch format {
	case "json":
		out := make(map[string]any, len(flags))
		for name, v := range flags {
			out[strings.ReplaceAll(name, "-", "_")] = v
		}
		return out
	case "yaml":
		return map[string]any{command: flags}
	default:
		return flags
	}
}

// kebabCase converts a Go field name to kong's default flag name,
// e.g. HeaderInclude -> header-include.
func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// configFlags maps the flag names of a command struct to their defaults.
// Path flags without a default are left out because kong expands an empty
// path to the working directory.
func configFlags(t reflect.Type, prefix string) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			for k, v := range configFlags(f.Type, prefix+f.Tag.Get("prefix")) {
				out[k] = v
			}
			continue
		}

		name := f.Tag.Get("name")
		if name == "" {
			name = kebabCase(f.Name)
		}
		def := f.Tag.Get("default")
		if f.Tag.Get("type") == "path" && def == "" {
			continue
		}
		if val := defaultValueForField(f.Type, def); val != nil {
			out[prefix+name] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def // may be empty
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return nil
	}
}
