package statusxml_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/makestatus/internal/statusxml"
)

func TestParse_StatusBlock(t *testing.T) {
	doc, err := statusxml.Parse(strings.NewReader(`<?xml version="1.0"?>
<status_block xmlns:xi="http://www.w3.org/2001/XInclude">
    <offset>0x1000</offset>
    <status name="ER_OK" value="0x0" comment="Success"/>
    <!-- ignored -->
    <unknown foo="bar"><nested/></unknown>
    <status name="ER_FAIL" value="0x1" comment="Failure"/>
    <xi:include href="more.xml"/>
</status_block>`))
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	block, ok := doc.Nodes[0].(*statusxml.Block)
	require.True(t, ok, "expected *Block, got %T", doc.Nodes[0])

	assert.Equal(t, []statusxml.Node{
		statusxml.Offset{Raw: "0x1000", Value: 0x1000},
		statusxml.Status{Name: "ER_OK", Value: "0x0", Comment: "Success"},
		statusxml.Status{Name: "ER_FAIL", Value: "0x1", Comment: "Failure"},
		statusxml.Include{Href: "more.xml"},
	}, block.Nodes)
}

func TestParse_TopLevelInclude(t *testing.T) {
	doc, err := statusxml.Parse(strings.NewReader(
		`<xi:include xmlns:xi="http://www.w3.org/2001/XInclude" href="a/b.xml"/>`))
	require.NoError(t, err)
	assert.Equal(t, []statusxml.Node{statusxml.Include{Href: "a/b.xml"}}, doc.Nodes)
}

func TestParse_IncludeOutsideNamespaceIgnored(t *testing.T) {
	doc, err := statusxml.Parse(strings.NewReader(`<status_block>
    <include href="nope.xml"/>
    <status name="ER_OK" value="0"/>
</status_block>`))
	require.NoError(t, err)
	block := doc.Nodes[0].(*statusxml.Block)
	assert.Equal(t, []statusxml.Node{
		statusxml.Status{Name: "ER_OK", Value: "0"},
	}, block.Nodes)
}

func TestParse_UnknownRootIgnored(t *testing.T) {
	doc, err := statusxml.Parse(strings.NewReader(`<something><status_block/></something>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

func TestParse_DeclaredEncoding(t *testing.T) {
	latin1 := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<status_block><status name=\"ER_CAF\" value=\"0x2\" comment=\"Caf\xe9 closed\"/></status_block>\n")

	doc, err := statusxml.Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	assert.Equal(t, []statusxml.Node{
		statusxml.Status{Name: "ER_CAF", Value: "0x2", Comment: "Café closed"},
	}, doc.Nodes[0].(*statusxml.Block).Nodes)
}

func TestParse_OffsetLiterals(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"decimal", "42", 42},
		{"hex", "0x9000", 0x9000},
		{"binary", "0b101", 5},
		{"octal", "0o17", 15},
		{"whitespace", "\n   0x10\n", 16},
		{"negative", "-3", -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := statusxml.Parse(strings.NewReader(
				"<status_block><offset>" + tc.text + "</offset></status_block>"))
			require.NoError(t, err)
			off := doc.Nodes[0].(*statusxml.Block).Nodes[0].(statusxml.Offset)
			assert.Equal(t, tc.want, off.Value)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty document", "", statusxml.ErrMalformed},
		{"unclosed block", `<status_block><status name="A" value="1"/>`, statusxml.ErrMalformed},
		{"mismatched tags", `<status_block></status>`, statusxml.ErrMalformed},
		{"empty offset", `<status_block><offset> </offset></status_block>`, statusxml.ErrInvalidOffset},
		{"bad offset", `<status_block><offset>0xZZ</offset></status_block>`, statusxml.ErrInvalidOffset},
		{"include without href", `<status_block><xi:include xmlns:xi="http://www.w3.org/2001/XInclude"/></status_block>`, statusxml.ErrMissingHref},
		{"two roots", `<status_block/><status_block/>`, statusxml.ErrMalformed},
		{"element after unknown root", `<something/><status_block><status name="A" value="1"/></status_block>`, statusxml.ErrMalformed},
		{"trailing text", "<status_block/>\ngarbage", statusxml.ErrMalformed},
		{"leading text", "garbage<status_block/>", statusxml.ErrMalformed},
		{"unknown encoding", `<?xml version="1.0" encoding="x-no-such-charset"?><status_block/>`, statusxml.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := statusxml.Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<status_block><status name="ER_OK" value="0x0" comment="Success"/></status_block>`), 0o644))

	doc, err := statusxml.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	require.Len(t, doc.Nodes, 1)

	_, err = statusxml.ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
