package svgtree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Encode writes the document as XML to `w`.
// Text and children of an element are written in this order.
func (doc *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xmlHeader)
	if err := encodeNode(bw, doc.Root); err != nil {
		return err
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Bytes returns the XML content of the document.
func (doc *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := doc.Encode(&buf)
	return buf.Bytes(), err
}

func encodeNode(w *bufio.Writer, n *Node) error {
	name := n.QualifiedName()
	w.WriteByte('<')
	w.WriteString(name)
	for _, attr := range n.Attrs {
		w.WriteByte(' ')
		w.WriteString(qualified(attr.Space, attr.Name))
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(attr.Value)); err != nil {
			return err
		}
		w.WriteByte('"')
	}
	if n.Text == "" && len(n.Children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}
	w.WriteByte('>')
	if n.Text != "" {
		if err := xml.EscapeText(w, []byte(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := encodeNode(w, child); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(name)
	_, err := w.WriteString(">")
	return err
}
