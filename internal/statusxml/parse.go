package statusxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseFile opens and parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open status document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a single document from r. The document must have exactly one
// root element; non-UTF-8 encodings declared in the XML prolog are decoded.
func Parse(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	doc := &Document{}
	sawRoot := false

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			if text, isText := tok.(xml.CharData); isText && len(bytes.TrimSpace(text)) > 0 {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
			continue
		}
		if sawRoot {
			return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformed, start.Name.Local)
		}
		sawRoot = true

		switch {
		case start.Name.Local == "status_block":
			b, err := parseBlock(d)
			if err != nil {
				return nil, err
			}
			doc.Nodes = append(doc.Nodes, b)
		case isInclude(start.Name):
			inc, err := parseInclude(d, start)
			if err != nil {
				return nil, err
			}
			doc.Nodes = append(doc.Nodes, inc)
		default:
			if err := d.Skip(); err != nil {
				return nil, malformed(err)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return doc, nil
}

func parseBlock(d *xml.Decoder) (*Block, error) {
	b := &Block{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "offset":
				off, err := parseOffset(d)
				if err != nil {
					return nil, err
				}
				b.Nodes = append(b.Nodes, off)
			case t.Name.Local == "status":
				b.Nodes = append(b.Nodes, Status{
					Name:    attr(t, "name"),
					Value:   attr(t, "value"),
					Comment: attr(t, "comment"),
				})
				if err := d.Skip(); err != nil {
					return nil, malformed(err)
				}
			case isInclude(t.Name):
				inc, err := parseInclude(d, t)
				if err != nil {
					return nil, err
				}
				b.Nodes = append(b.Nodes, inc)
			default:
				if err := d.Skip(); err != nil {
					return nil, malformed(err)
				}
			}
		case xml.EndElement:
			return b, nil
		}
	}
}

// parseOffset reads the text of an offset element up to its end tag.
func parseOffset(d *xml.Decoder) (Offset, error) {
	var text strings.Builder
	for done := false; !done; {
		tok, err := d.Token()
		if err != nil {
			return Offset{}, malformed(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return Offset{}, malformed(err)
			}
		case xml.EndElement:
			done = true
		}
	}

	raw := strings.TrimSpace(text.String())
	if raw == "" {
		return Offset{}, fmt.Errorf("%w: empty offset", ErrInvalidOffset)
	}
	v, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q: %v", ErrInvalidOffset, raw, err)
	}
	return Offset{Raw: raw, Value: v}, nil
}

func parseInclude(d *xml.Decoder, start xml.StartElement) (Include, error) {
	href, ok := lookupAttr(start, "href")
	if err := d.Skip(); err != nil {
		return Include{}, malformed(err)
	}
	if !ok {
		return Include{}, ErrMissingHref
	}
	return Include{Href: href}, nil
}

func isInclude(n xml.Name) bool {
	return n.Local == "include" && n.Space == XIncludeNamespace
}

func attr(el xml.StartElement, name string) string {
	v, _ := lookupAttr(el, name)
	return v
}

func lookupAttr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func malformed(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
