package htmlhost

import (
	"errors"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/uistyle/details"
	"github.com/npillmayer/uistyle/dom/style"
	"golang.org/x/net/html"
)

// ErrUnknownNode is returned by UserAgent for nodes not part of its document.
var ErrUnknownNode = errors.New("node is not part of the HTML document")

// uaDefaults apply to every element. Elements are positioned statically and
// sized by their content unless a rule says otherwise.
var uaDefaults = []style.Declaration{
	{Property: "position", Value: "static"},
	{Property: "width", Value: "auto"},
	{Property: "height", Value: "auto"},
}

// uaRule is a user-agent rule for elements matching a selector.
type uaRule struct {
	match cascadia.Selector
	decls []style.Declaration
}

// Links get a conditional color. A static document never is in state
// "hover", so the declaration survives in cached sets but is filtered on
// re-evaluation.
var uaRules = []uaRule{
	{match: cascadia.MustCompile("a[href]"), decls: []style.Declaration{
		{Property: "color", Value: "linktext"},
		{Property: "color", Value: "activetext", Condition: "hover"},
	}},
	{match: cascadia.MustCompile("[hidden]"), decls: []style.Declaration{
		{Property: "display", Value: "none"},
	}},
}

// UserAgent resolves the user-agent default declarations for the nodes of
// a document. It is a stand-in for a real cascade resolver.
type UserAgent struct {
	doc      *Document
	defaults []style.Declaration
	hovered  map[*html.Node]bool
}

// NewUserAgent creates a resolver for doc.
func NewUserAgent(doc *Document) *UserAgent {
	return &UserAgent{doc: doc, defaults: uaDefaults, hovered: make(map[*html.Node]bool)}
}

// SetHovered sets the pseudo-class state "hover" for an HTML node.
func (ua *UserAgent) SetHovered(n *html.Node, on bool) {
	if on {
		ua.hovered[n] = true
	} else {
		delete(ua.hovered, n)
	}
}

// ResolveDeclarations is part of interface details.Resolver. Disabled
// properties of d are left out.
func (ua *UserAgent) ResolveDeclarations(d *details.Details) (style.DeclarationSet, error) {
	n := ua.doc.Node(d.Node())
	if n == nil {
		return style.DeclarationSet{}, ErrUnknownNode
	}
	decls := []style.Declaration{{Property: "display", Value: DisplayProperty(n)}}
	if n.Type == html.ElementNode {
		decls = append(decls, ua.defaults...)
		for _, rule := range uaRules {
			if rule.match.Match(n) {
				decls = append(decls, rule.decls...)
			}
		}
	}
	filtered := decls[:0]
	for _, decl := range decls {
		if !d.HasDisabledProperty(decl.Property) {
			filtered = append(filtered, decl)
		}
	}
	return style.NewDeclarationSet(filtered...), nil
}

// Reevaluate is part of interface details.Reevaluator.
func (ua *UserAgent) Reevaluate(d *details.Details, set style.DeclarationSet) (style.DeclarationSet, error) {
	n := ua.doc.Node(d.Node())
	if n == nil {
		return style.DeclarationSet{}, ErrUnknownNode
	}
	var effective []style.Declaration
	set.Each(func(_ int, decl style.Declaration) bool {
		if decl.Condition == "" || (decl.Condition == "hover" && ua.hovered[n]) {
			effective = append(effective, decl)
		}
		return true
	})
	return style.NewDeclarationSet(effective...), nil
}

var _ details.Resolver = &UserAgent{}
var _ details.Reevaluator = &UserAgent{}

// DisplayProperty returns the default `display` CSS property for an HTML node.
func DisplayProperty(node *html.Node) style.Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "p":
		return "block-inline"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "section", "ul", "nav",
		"header", "footer", "main", "article", "form", "table", "dialog":
		return "block"
	case "li":
		return "list-item"
	case "i", "b", "span", "strong", "em", "a", "label", "img", "input", "button":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}
