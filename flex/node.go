package flex

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Node is one XML element as seen by the decode engine: a tag, an
// unordered attribute map, and ordered children. Flex exports carry data
// exclusively in attributes, so character data is discarded at build time.
//
// Node is IMMUTABLE after BuildTree returns. Do not modify.
type Node struct {
	Tag      string
	Attr     map[string]string
	Children []*Node
}

// BuildTree reads a whole XML document into a Node tree. It is the
// engine's only contact with the tokenizer; everything downstream works
// on the immutable tree.
func BuildTree(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseErrorf("", "", "malformed XML: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attr = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attr[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parseErrorf("", "", "multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, parseErrorf("", "", "empty document")
	}
	return root, nil
}

// buildTreeBytes is the []byte convenience used by Decode.
func buildTreeBytes(data []byte) (*Node, error) {
	return BuildTree(bytes.NewReader(data))
}
