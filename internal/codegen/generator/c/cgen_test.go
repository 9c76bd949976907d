package cgen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/makestatus/internal/codegen/generator"
	cgen "github.com/Alia5/makestatus/internal/codegen/generator/c"
	"github.com/Alia5/makestatus/internal/statusxml"
)

var sampleEntries = []statusxml.Status{
	{Name: "ER_OK", Value: "0x0", Comment: "Success"},
	{Name: "ER_FAIL", Value: "0x1", Comment: "Failure"},
}

// drive feeds entries and includes to an emitter the way the generator does.
func drive(t *testing.T, e generator.Emitter, entries []statusxml.Status, includes []string) {
	t.Helper()
	require.NoError(t, e.Begin())
	for i, s := range entries {
		require.NoError(t, e.Status(i, s))
	}
	for _, p := range includes {
		require.NoError(t, e.Include(p))
	}
	require.NoError(t, e.End())
}

func TestHeaderWriter_Golden(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewHeaderWriter(&buf, "", cgen.DefaultLicense), sampleEntries, nil)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "header_two_entries", buf.Bytes())
}

func TestSourceWriter_Golden(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewSourceWriter(&buf, "Bus", cgen.DefaultLicense, "Status.h"), sampleEntries, nil)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "source_two_entries", buf.Bytes())
}

func TestDepWriter_Golden(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewDepWriter(&buf, "Status.h Status.cc"), sampleEntries, []string{"/src/a.xml", "/src/b.xml"})

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "dep_two_includes", buf.Bytes())
}

func TestHeaderWriter_EntrySeparators(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewHeaderWriter(&buf, "", cgen.DefaultLicense), sampleEntries, nil)
	out := buf.String()

	assert.Contains(t, out, "typedef enum {\n    ER_OK = 0x0 /**< Success */,\n    ER_FAIL = 0x1 /**< Failure */\n} QStatus;")
	assert.Equal(t, 1, strings.Count(out, ",\n    ER_"))
	assert.Contains(t, out, "extern ALLJOYN_DLLExport const char* QCC_StatusText(QStatus status);")
}

func TestHeaderWriter_NoEntries(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewHeaderWriter(&buf, "", cgen.DefaultLicense), nil, nil)
	assert.Contains(t, buf.String(), "typedef enum {\n} QStatus;")
}

func TestSourceWriter_CaseLines(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewSourceWriter(&buf, "Bus", cgen.DefaultLicense, "alljoyn/Status.h"), sampleEntries, nil)
	out := buf.String()

	assert.Contains(t, out, "#include <alljoyn/Status.h>\n")
	assert.Contains(t, out, "const char* QCC_BusStatusText(QStatus status)\n")
	assert.Contains(t, out, "        CASE(ER_OK);\n        CASE(ER_FAIL);\n    default:\n")
	assert.Contains(t, out, `return "<unknown>";`)
	assert.Equal(t, 2, strings.Count(out, "CASE(ER_"))
}

func TestDepWriter_NoTarget(t *testing.T) {
	var buf bytes.Buffer
	drive(t, cgen.NewDepWriter(&buf, ""), nil, []string{"/x/y.xml"})
	assert.Equal(t, " \\\n /x/y.xml\n", buf.String())
}

func TestLoadLicense(t *testing.T) {
	lic, err := cgen.LoadLicense("")
	require.NoError(t, err)
	assert.Equal(t, cgen.DefaultLicense, lic)

	path := filepath.Join(t.TempDir(), "license.txt")
	require.NoError(t, os.WriteFile(path, []byte("/* custom */\n\n"), 0o644))
	lic, err = cgen.LoadLicense(path)
	require.NoError(t, err)
	assert.Equal(t, "/* custom */", lic)

	_, err = cgen.LoadLicense(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
