package svgtree

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

var errNoElement = errors.New("invalid svg xml document: no element found")

// ReadDocumentStream builds the tree of the XML document read from `stream`.
// `source` identifies the origin of the data in error messages.
// Comments, directives and processing instructions are dropped.
func ReadDocumentStream(stream io.Reader, source string) (*Document, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node // currently opened elements
	)
	for {
		t, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading %s", source)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{Space: se.Name.Space, Tag: se.Name.Local}
			if len(se.Attr) != 0 {
				node.Attrs = make([]Attr, len(se.Attr))
				for i, attr := range se.Attr {
					node.Attrs[i] = Attr{Space: attr.Name.Space, Name: attr.Name.Local, Value: attr.Value}
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.Errorf("reading %s: more than one root element", source)
				}
				root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.Errorf("reading %s: unexpected closing tag %s", source, qualified(se.Name.Space, se.Name.Local))
			}
			current := stack[len(stack)-1]
			if current.Tag != se.Name.Local || current.Space != se.Name.Space {
				return nil, errors.Errorf("reading %s: tag %s closed by %s", source,
					current.QualifiedName(), qualified(se.Name.Space, se.Name.Local))
			}
			if strings.TrimSpace(current.Text) == "" {
				current.Text = ""
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += string(se)
			}
		}
	}
	if root == nil {
		return nil, errors.Wrap(errNoElement, source)
	}
	if len(stack) != 0 {
		return nil, errors.Errorf("reading %s: unclosed tag %s", source, stack[len(stack)-1].QualifiedName())
	}
	return &Document{Root: root, Source: source}, nil
}

// ReadDocument reads the document from the named file.
func ReadDocument(file string) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, file)
}
