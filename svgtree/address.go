package svgtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrAddress is returned (wrapped) when an address can't be resolved.
var ErrAddress = errors.New("invalid address")

// AddressOf returns the structural address of `n`, a string of the form
// /svg/g[0]/path[2], where each index counts the preceding siblings
// sharing the same tag.
func AddressOf(n *Node) string {
	var segments []string
	for ; n.parent != nil; n = n.parent {
		count := 0
		found := false
		for _, sibling := range n.parent.Children {
			if sibling == n {
				found = true
				break
			}
			if sibling.Tag == n.Tag {
				count++
			}
		}
		if !found {
			panic("svgtree: node is not a child of its parent")
		}
		segments = append(segments, fmt.Sprintf("/%s[%d]", n.Tag, count))
	}
	segments = append(segments, "/"+n.Tag)

	// segments are in node to root order
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "")
}

// Resolve returns the node of the tree `root` located at `address`,
// as returned by AddressOf.
func Resolve(root *Node, address string) (*Node, error) {
	if !strings.HasPrefix(address, "/") {
		return nil, errors.Wrapf(ErrAddress, "address %q is not absolute", address)
	}
	segments := strings.Split(address[1:], "/")
	if segments[0] != root.Tag {
		return nil, errors.Wrapf(ErrAddress, "tag %s of address %s does not match root tag %s",
			segments[0], address, root.Tag)
	}
	node := root
	for _, segment := range segments[1:] {
		tag, num, err := parseSegment(segment)
		if err != nil {
			return nil, errors.Wrapf(err, "address %s", address)
		}
		var next *Node
		count := 0
		for _, child := range node.Children {
			if child.Tag != tag {
				continue
			}
			if count == num {
				next = child
				break
			}
			count++
		}
		if next == nil {
			return nil, errors.Wrapf(ErrAddress, "tag count /%s[%d] of address %s not found", tag, num, address)
		}
		node = next
	}
	return node, nil
}

// parseSegment splits "tag[k]"
func parseSegment(segment string) (string, int, error) {
	open := strings.IndexByte(segment, '[')
	if open <= 0 || !strings.HasSuffix(segment, "]") {
		return "", 0, errors.Wrapf(ErrAddress, "invalid segment %q", segment)
	}
	num, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil || num < 0 {
		return "", 0, errors.Wrapf(ErrAddress, "invalid index in segment %q", segment)
	}
	return segment[:open], num, nil
}

// Resolve is the same as Resolve(doc.Root, address), with the
// document source added to the error.
func (doc *Document) Resolve(address string) (*Node, error) {
	node, err := Resolve(doc.Root, address)
	if err != nil {
		return nil, errors.Wrapf(err, "in file %s", doc.Source)
	}
	return node, nil
}
