package htmlhost

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/uistyle/details"
	"github.com/npillmayer/uistyle/dom"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// DocumentType is the runtime type reported for the document node.
const DocumentType = "#document"

// DocumentID is the element id Attach assigns to the document node. It is
// the root segment of all identity paths in a document.
const DocumentID = "document"

// Document is a host tree over an HTML node tree.
type Document struct {
	root  *html.Node
	ids   map[*html.Node]dom.NodeID
	nodes []*html.Node // index is node id - 1
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML document: %w", err)
	}
	return NewDocument(root), nil
}

// NewDocument wraps an HTML node tree. Node ids are assigned in document
// order, starting with the root.
func NewDocument(root *html.Node) *Document {
	doc := &Document{
		root: root,
		ids:  make(map[*html.Node]dom.NodeID),
	}
	doc.index(root)
	tracer().Debugf("HTML document with %d element nodes", len(doc.nodes))
	return doc
}

func (doc *Document) index(n *html.Node) {
	if n == nil || !isStyleable(n) {
		return
	}
	doc.nodes = append(doc.nodes, n)
	doc.ids[n] = dom.NodeID(len(doc.nodes))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		doc.index(c)
	}
}

func isStyleable(n *html.Node) bool {
	return n.Type == html.ElementNode || n.Type == html.DocumentNode
}

// Root returns the id of the root node, usually the document node.
func (doc *Document) Root() dom.NodeID {
	return doc.ids[doc.root]
}

// Len returns the number of nodes in the host tree.
func (doc *Document) Len() int {
	return len(doc.nodes)
}

// Node returns the HTML node for an id, or nil.
func (doc *Document) Node(id dom.NodeID) *html.Node {
	if id == dom.NoNode || int(id) > len(doc.nodes) {
		return nil
	}
	return doc.nodes[id-1]
}

// ID returns the node id of an HTML node, or dom.NoNode.
func (doc *Document) ID(n *html.Node) dom.NodeID {
	return doc.ids[n]
}

// Children is part of interface dom.Host.
func (doc *Document) Children(id dom.NodeID) []dom.NodeID {
	n := doc.Node(id)
	if n == nil {
		return nil
	}
	var ch []dom.NodeID
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if cid, ok := doc.ids[c]; ok {
			ch = append(ch, cid)
		}
	}
	return ch
}

// IsContainer is true for nodes with a user-agent default display mode of
// "block".
func (doc *Document) IsContainer(id dom.NodeID) bool {
	n := doc.Node(id)
	return n != nil && DisplayProperty(n) == "block"
}

// IsController is true for the document, the body, dialogs, iframes and
// elements carrying a data-controller attribute.
func (doc *Document) IsController(id dom.NodeID) bool {
	n := doc.Node(id)
	if n == nil {
		return false
	}
	if n.Type == html.DocumentNode {
		return true
	}
	switch n.Data {
	case "body", "dialog", "iframe":
		return true
	}
	_, ok := attr(n, "data-controller")
	return ok
}

// TypeOf returns the lower-case tag name of an element.
func (doc *Document) TypeOf(id dom.NodeID) string {
	n := doc.Node(id)
	if n == nil {
		return ""
	}
	if n.Type == html.DocumentNode {
		return DocumentType
	}
	return strings.ToLower(n.Data)
}

// ElementID returns the id attribute of an element.
func (doc *Document) ElementID(id dom.NodeID) string {
	n := doc.Node(id)
	if n == nil {
		return ""
	}
	v, _ := attr(n, "id")
	return strings.TrimSpace(v)
}

// Classes returns the class attribute of an element, split into classes.
func (doc *Document) Classes(id dom.NodeID) []string {
	n := doc.Node(id)
	if n == nil {
		return nil
	}
	v, _ := attr(n, "class")
	return strings.Fields(v)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

var _ dom.Host = &Document{}

// Attach creates details for every node of doc in t and transfers parent
// links, element ids and style classes. The document node gets DocumentID
// as its element id.
func (doc *Document) Attach(t *details.Table) error {
	var errs error
	dom.Walk(doc, doc.Root(), func(id dom.NodeID) bool {
		d := t.Details(id)
		if doc.Node(id).Type == html.DocumentNode {
			d.SetElementID(DocumentID)
		} else if eid := doc.ElementID(id); eid != "" {
			d.SetElementID(eid)
		}
		d.SetStyleClasses(doc.Classes(id)...)
		for _, ch := range doc.Children(id) {
			if err := t.Details(ch).SetParent(d); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("attaching node %s: %w", ch, err))
			}
		}
		return true
	})
	return errs
}
