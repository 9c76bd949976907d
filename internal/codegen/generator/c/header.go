package cgen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Alia5/makestatus/internal/statusxml"
)

var headerPrologueTmpl = template.Must(template.New("header-prologue").Parse(`{{.License}}

/**
 * @file
 * This file contains an enumerated list values that QStatus can return
 *
 * Note: This file is generated during the make process.
 */

#ifndef _STATUS_H
#define _STATUS_H

#ifndef ALLJOYN_DLLExport /* Used for extern C functions. Add __declspec(dllexport) when using MSVC */
#  if defined(_MSC_VER) /* MSVC compiler*/
#    define ALLJOYN_DLLExport __declspec(dllexport)
#  else /* compiler other than MSVC */
#    define ALLJOYN_DLLExport
#  endif /* Compiler type */
#endif

#ifdef __cplusplus
extern "C" {
#endif

/**
 * Enumerated list of values QStatus can return
 */
typedef enum {`))

var headerEpilogueTmpl = template.Must(template.New("header-epilogue").Parse(`
} QStatus;

/**
 * Convert a status code to a C string.
 *
 * @c %QCC_StatusText(ER_OK) returns the C string @c "ER_OK"
 *
 * @param status    Status code to be converted.
 *
 * @return  C string representation of the status code.
 */
extern ALLJOYN_DLLExport const char* QCC_{{.Prefix}}StatusText(QStatus status);

#ifdef __cplusplus
}   /* extern "C" */
#endif

#endif
`))

// HeaderWriter streams the QStatus enumeration header.
type HeaderWriter struct {
	w       io.Writer
	prefix  string
	license string
}

func NewHeaderWriter(w io.Writer, prefix, license string) *HeaderWriter {
	return &HeaderWriter{w: w, prefix: prefix, license: license}
}

func (h *HeaderWriter) Begin() error {
	return headerPrologueTmpl.Execute(h.w, map[string]string{"License": h.license})
}

// Status writes one enum member. Members after the first are comma-prefixed.
func (h *HeaderWriter) Status(index int, s statusxml.Status) error {
	sep := ","
	if index == 0 {
		sep = ""
	}
	_, err := fmt.Fprintf(h.w, "%s\n    %s = %s /**< %s */", sep, s.Name, s.Value, s.Comment)
	return err
}

func (h *HeaderWriter) Include(string) error { return nil }

func (h *HeaderWriter) End() error {
	return headerEpilogueTmpl.Execute(h.w, map[string]string{"Prefix": h.prefix})
}
