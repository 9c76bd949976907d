// Package statusxml parses status code description documents into a typed
// tree.
//
// A document is an XML file whose root is either a status_block element or an
// XInclude include element. A status_block holds status, offset and include
// children:
//
//	<status_block>
//	    <offset>0x1000</offset>
//	    <status name="ER_OK" value="0x0" comment="Success"/>
//	    <xi:include href="bus_status.xml" xmlns:xi="http://www.w3.org/2001/XInclude"/>
//	</status_block>
//
// Elements the parser does not recognize are skipped.
package statusxml

// XIncludeNamespace is the namespace an include element must belong to.
const XIncludeNamespace = "http://www.w3.org/2001/XInclude"

// Document is one parsed file.
type Document struct {
	Path  string
	Nodes []Node
}

// Node is one recognized element: *Block, Status, Offset or Include.
type Node interface {
	node()
}

// Block is a status_block element.
type Block struct {
	Nodes []Node
}

// Status is a single named status code.
type Status struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Value   string `json:"value" yaml:"value" toml:"value"`
	Comment string `json:"comment" yaml:"comment" toml:"comment"`
}

// Offset seeds the running counter of the enclosing block.
type Offset struct {
	Raw   string
	Value int64
}

// Include references another document by href.
type Include struct {
	Href string
}

func (*Block) node()  {}
func (Status) node()  {}
func (Offset) node()  {}
func (Include) node() {}
