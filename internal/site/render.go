package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/saber-notes/saberweb/internal/annotate"
	"github.com/saber-notes/saberweb/internal/links"
)

// annotationsScriptID is the id of the JSON block read by script.js.
const annotationsScriptID = "annotations"

// Page is one mounted instance of the landing page. It owns the annotation
// group drawn for it; rendering the same Page again replaces that group.
type Page struct {
	manifest *annotate.Manifest
	ctrl     *annotate.Controller
}

// NewPage creates a Page whose annotations use highlightColor.
func NewPage(highlightColor string) *Page {
	m := annotate.NewManifest()
	return &Page{manifest: m, ctrl: annotate.NewController(m, highlightColor)}
}

// Unmount hides the page's annotation group.
func (p *Page) Unmount() { p.ctrl.Unmount() }

// Renderer turns page data into HTML documents.
type Renderer struct {
	landing  *template.Template
	document *template.Template
	md       goldmark.Markdown
	images   ImagePolicy
	siteURL  string
	privacy  []byte
}

// NewRenderer parses the page templates. A nil privacy source selects the
// built-in privacy policy.
func NewRenderer(images ImagePolicy, siteURL string, privacy []byte) (*Renderer, error) {
	landing, err := template.New("landing").Parse(landingTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing landing template: %w", err)
	}
	document, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	if privacy == nil {
		privacy = []byte(defaultPrivacyPolicy)
	}
	return &Renderer{
		landing:  landing,
		document: document,
		md:       newMarkdown(),
		images:   images,
		siteURL:  siteURL,
		privacy:  privacy,
	}, nil
}

// Landing renders the landing page for l and mounts its annotations on p.
// The visible annotation group is embedded as JSON for the page script.
func (r *Renderer) Landing(l links.Links, p *Page) ([]byte, error) {
	data := newLandingData(l, r.siteURL)
	if err := r.images.CheckAll(data.remoteImages()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.landing.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing landing template: %w", err)
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered page: %w", err)
	}

	if err := p.ctrl.Mount(annotate.Discover(doc)); err != nil {
		return nil, fmt.Errorf("annotating page: %w", err)
	}

	payload, err := json.Marshal(p.manifest.Visible())
	if err != nil {
		return nil, fmt.Errorf("encoding annotations: %w", err)
	}
	if err := appendJSONScript(doc, annotationsScriptID, payload); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return out.Bytes(), nil
}

// PrivacyPolicy renders the privacy policy document page.
func (r *Renderer) PrivacyPolicy() ([]byte, error) {
	content, title, err := renderMarkdown(r.md, r.privacy, "Privacy policy")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	data := struct {
		Title   string
		Content template.HTML
	}{title, content}
	if err := r.document.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing document template: %w", err)
	}
	return buf.Bytes(), nil
}

// appendJSONScript adds <script type="application/json" id=id> to <body>.
// json.Marshal escapes '<', so the payload cannot close the script early.
func appendJSONScript(doc *html.Node, id string, payload []byte) error {
	body := findElement(doc, atom.Body)
	if body == nil {
		return fmt.Errorf("rendered page has no body")
	}
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr: []html.Attribute{
			{Key: "type", Val: "application/json"},
			{Key: "id", Val: id},
		},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: string(payload)})
	body.AppendChild(script)
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
