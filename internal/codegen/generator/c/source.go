package cgen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Alia5/makestatus/internal/statusxml"
)

// UnknownStatusText is returned by the generated function for values that are
// not part of the enumeration.
const UnknownStatusText = "<unknown>"

// DefaultHeaderInclude is the header the generated source includes when no
// other name is configured.
const DefaultHeaderInclude = "Status.h"

var sourcePrologueTmpl = template.Must(template.New("source-prologue").Parse(`{{.License}}

/**
 * @file
 * This file contains the QStatus to string conversion.
 *
 * Note: This file is generated during the make process.
 */

#include <stdio.h>
#include <{{.HeaderInclude}}>

#define CASE(_status) case _status: return #_status

const char* QCC_{{.Prefix}}StatusText(QStatus status)
{
#if defined(NDEBUG)
    static char code[8];
#ifdef _WIN32
    _snprintf(code, sizeof(code), "0x%04x", status);
#else
    snprintf(code, sizeof(code), "0x%04x", status);
#endif
    return code;
#else
    switch (status) {
`))

var sourceEpilogueTmpl = template.Must(template.New("source-epilogue").Parse(`    default:
        return "{{.Unknown}}";
    }
#endif
}
`))

// SourceWriter streams the implementation of QCC_<prefix>StatusText.
type SourceWriter struct {
	w             io.Writer
	prefix        string
	license       string
	headerInclude string
}

func NewSourceWriter(w io.Writer, prefix, license, headerInclude string) *SourceWriter {
	return &SourceWriter{w: w, prefix: prefix, license: license, headerInclude: headerInclude}
}

func (s *SourceWriter) Begin() error {
	return sourcePrologueTmpl.Execute(s.w, map[string]string{
		"License":       s.license,
		"HeaderInclude": s.headerInclude,
		"Prefix":        s.prefix,
	})
}

func (s *SourceWriter) Status(_ int, st statusxml.Status) error {
	_, err := fmt.Fprintf(s.w, "        CASE(%s);\n", st.Name)
	return err
}

func (s *SourceWriter) Include(string) error { return nil }

func (s *SourceWriter) End() error {
	return sourceEpilogueTmpl.Execute(s.w, map[string]string{"Unknown": UnknownStatusText})
}
