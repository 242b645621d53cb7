package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/nestgraph/pkg/errors"
	"github.com/matzehuels/nestgraph/pkg/graph"
)

// Format identifies a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type nodeDoc struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,ident"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	Labels     []labelDoc     `json:"labels,omitempty" yaml:"labels,omitempty" validate:"dive"`
	Ports      []portDoc      `json:"ports,omitempty" yaml:"ports,omitempty" validate:"dive"`
	Children   []nodeDoc      `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
	Edges      []edgeDoc      `json:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
}

type portDoc struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,ident"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	Labels     []labelDoc     `json:"labels,omitempty" yaml:"labels,omitempty" validate:"dive"`
}

type labelDoc struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,ident"`
	Text       string         `json:"text" yaml:"text" validate:"required"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type edgeDoc struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,ident"`
	Sources    []string       `json:"sources,omitempty" yaml:"sources,omitempty" validate:"dive,ident"`
	Targets    []string       `json:"targets,omitempty" yaml:"targets,omitempty" validate:"dive,ident"`
	Container  string         `json:"container,omitempty" yaml:"container,omitempty" validate:"omitempty,ident"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	Labels     []labelDoc     `json:"labels,omitempty" yaml:"labels,omitempty" validate:"dive"`
	Sections   []sectionDoc   `json:"sections,omitempty" yaml:"sections,omitempty" validate:"dive"`
}

type sectionDoc struct {
	ID       string   `json:"id" yaml:"id" validate:"required,ident"`
	Outgoing []string `json:"outgoing,omitempty" yaml:"outgoing,omitempty" validate:"dive,ident"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return errors.ValidateIdentifier(fl.Field().String()) == nil
	})
	return v
}

// ReadJSON decodes a JSON document from r and builds the graph it describes.
// The returned node is the root of a new, independent tree. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*graph.Node, error) {
	return Read(r, FormatJSON)
}

// ReadYAML decodes a YAML document from r and builds the graph it describes.
func ReadYAML(r io.Reader) (*graph.Node, error) {
	return Read(r, FormatYAML)
}

// Read decodes a document in the given format and builds the graph.
func Read(r io.Reader, format Format) (*graph.Node, error) {
	var doc nodeDoc
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid document")
	}

	b := newBuilder()
	root, err := b.build(doc)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ImportFile reads the document at path, choosing the format from the file
// extension (.json, .yaml or .yml).
func ImportFile(path string) (*graph.Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()

	root, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// FormatFromPath maps a file extension to a document format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %s (want .json, .yaml or .yml)", path)
}

// builder turns a validated document into a graph, two passes: shapes first so
// edges can reference shapes declared later in the document.
type builder struct {
	nodes  map[string]*graph.Node
	shapes map[string]graph.ConnectableShape
	ids    map[string]bool
	edges  []edgeDoc
}

func newBuilder() *builder {
	return &builder{
		nodes:  make(map[string]*graph.Node),
		shapes: make(map[string]graph.ConnectableShape),
		ids:    make(map[string]bool),
	}
}

func (b *builder) build(doc nodeDoc) (*graph.Node, error) {
	root := graph.CreateGraph()
	if err := b.fillNode(root, doc); err != nil {
		return nil, err
	}
	for _, ed := range b.edges {
		if err := b.buildEdge(ed); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (b *builder) fillNode(n *graph.Node, doc nodeDoc) error {
	if err := b.identify(n, doc.ID, doc.Properties); err != nil {
		return err
	}
	b.nodes[n.ID()] = n
	b.shapes[n.ID()] = n
	if err := b.addLabels(n, doc.Labels); err != nil {
		return err
	}
	for _, pd := range doc.Ports {
		p := graph.CreatePort(n)
		if err := b.identify(p, pd.ID, pd.Properties); err != nil {
			return err
		}
		b.shapes[p.ID()] = p
		if err := b.addLabels(p, pd.Labels); err != nil {
			return err
		}
	}
	for _, cd := range doc.Children {
		if err := b.fillNode(graph.CreateNode(n), cd); err != nil {
			return err
		}
	}
	b.edges = append(b.edges, doc.Edges...)
	return nil
}

func (b *builder) buildEdge(ed edgeDoc) error {
	name := ed.ID
	if name == "" {
		name = fmt.Sprintf("%v->%v", ed.Sources, ed.Targets)
	}
	sources, err := b.resolve(ed.Sources)
	if err != nil {
		return fmt.Errorf("edge %s: %w", name, err)
	}
	targets, err := b.resolve(ed.Targets)
	if err != nil {
		return fmt.Errorf("edge %s: %w", name, err)
	}

	e, err := b.connect(ed.Container, sources, targets)
	if err != nil {
		return fmt.Errorf("edge %s: %w", name, err)
	}
	if err := b.identify(e, ed.ID, ed.Properties); err != nil {
		return err
	}
	if err := b.addLabels(e, ed.Labels); err != nil {
		return err
	}

	sections := make(map[string]*graph.EdgeSection, len(ed.Sections))
	for _, sd := range ed.Sections {
		s := graph.CreateEdgeSection(e)
		if err := b.identify(s, sd.ID, nil); err != nil {
			return err
		}
		sections[sd.ID] = s
	}
	for _, sd := range ed.Sections {
		for _, next := range sd.Outgoing {
			to, ok := sections[next]
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "edge %s: section %s continues into unknown section %s", name, sd.ID, next)
			}
			if err := graph.ConnectSections(sections[sd.ID], to); err != nil {
				return fmt.Errorf("edge %s: %w", name, err)
			}
		}
	}
	return nil
}

// connect creates the edge. Without a declared container the containing node
// is computed from the endpoints; a declared one is kept as authored.
func (b *builder) connect(container string, sources, targets []graph.ConnectableShape) (*graph.Edge, error) {
	if container == "" {
		return graph.CreateHyperedge(slices.Values(sources), slices.Values(targets))
	}
	n, ok := b.nodes[container]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown container node %q", container)
	}
	if len(sources)+len(targets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidEdge, "the edge must have at least one source or target")
	}
	e := graph.CreateEdge(n)
	for _, s := range sources {
		if err := e.AddSource(s); err != nil {
			return nil, err
		}
	}
	for _, t := range targets {
		if err := e.AddTarget(t); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (b *builder) resolve(refs []string) ([]graph.ConnectableShape, error) {
	out := make([]graph.ConnectableShape, 0, len(refs))
	for _, ref := range refs {
		s, ok := b.shapes[ref]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "unknown node or port %q", ref)
		}
		out = append(out, s)
	}
	return out, nil
}

func (b *builder) addLabels(parent graph.Element, docs []labelDoc) error {
	for _, ld := range docs {
		l := graph.CreateLabel(parent)
		l.Text = ld.Text
		if err := b.identify(l, ld.ID, ld.Properties); err != nil {
			return err
		}
	}
	return nil
}

// identify assigns id (or a fresh UUID) and properties to el, rejecting
// duplicate ids across the whole document.
func (b *builder) identify(el graph.Element, id string, props map[string]any) error {
	if id == "" {
		id = uuid.NewString()
	}
	if b.ids[id] {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate id %q", id)
	}
	b.ids[id] = true
	el.SetID(id)
	for k, v := range props {
		el.Props()[k] = v
	}
	return nil
}
