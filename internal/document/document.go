// Package document turns declarative diagram documents (YAML, TOML or JSON)
// into Mermaid text using the diagram builders.
//
// A document names its kind and lists statements that refer to each other
// by local ids. Every statement that fails is reported and the others are
// still rendered, so a document with errors yields both text and an error
// aggregating the failures.
package document

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/mermaidkit"
	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode reports a document that could not be parsed.
	ErrDecode = errors.New("invalid document")
	// ErrUnsupportedKind reports a kind the loader cannot build.
	ErrUnsupportedKind = errors.New("unsupported diagram kind")
	// ErrUnknownReference reports a statement naming an id that was never declared.
	ErrUnknownReference = errors.New("unknown reference")
	// ErrUnknownName reports an enumerated value (shape, arrow, ...) that does not exist.
	ErrUnknownName = errors.New("unknown name")
)

// Format is the serialization of a document.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "yaml", "yml", "":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrDecode, s)
	}
}

// FormatFromContentType maps a request content type to a format. Unknown
// types are read as YAML, which also accepts JSON.
func FormatFromContentType(contentType string) Format {
	mt, _, _ := mime.ParseMediaType(contentType)
	switch {
	case strings.HasSuffix(mt, "json"):
		return JSON
	case strings.HasSuffix(mt, "toml"):
		return TOML
	default:
		return YAML
	}
}

// Document is a decoded diagram document.
type Document struct {
	dto.Header
}

// Kinds lists the kinds documents can describe.
func Kinds() []mermaidkit.Kind {
	return []mermaidkit.Kind{
		mermaidkit.KindFlowchart,
		mermaidkit.KindSequence,
		mermaidkit.KindState,
		mermaidkit.KindPie,
		mermaidkit.KindMindmap,
	}
}

// Load sanitizes and parses data written in format.
func Load(data []byte, format Format) (*Document, error) {
	data, err := Sanitize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	raw := map[string]any{}
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	case TOML:
		_, err = toml.Decode(string(data), &raw)
	case JSON:
		err = json.Unmarshal(data, &raw)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	doc := &Document{}
	if err := decode(raw, &doc.Header); err != nil {
		return nil, err
	}
	if doc.Kind == "" {
		return nil, fmt.Errorf("%w: missing kind", ErrDecode)
	}
	return doc, nil
}

// Options returns the builder options the document header asks for,
// followed by extra.
func (d *Document) Options(extra ...diagram.Option) []diagram.Option {
	var opts []diagram.Option
	if d.Title != "" {
		opts = append(opts, diagram.WithTitle(d.Title))
	}
	if len(d.Config) > 0 {
		opts = append(opts, diagram.WithConfig(d.Config))
	}
	if d.Permissive {
		opts = append(opts, diagram.Permissive())
	}
	return append(opts, extra...)
}

// Build renders doc. When some statements fail the returned text holds the
// ones that succeeded and the error aggregates the failures; use Errors to
// list them.
func Build(doc *Document, opts ...diagram.Option) (string, error) {
	opts = doc.Options(opts...)
	switch mermaidkit.Kind(strings.ToLower(doc.Kind)) {
	case mermaidkit.KindFlowchart:
		return buildFlowchart(doc.Body, opts)
	case mermaidkit.KindSequence:
		return buildSequence(doc.Body, opts)
	case mermaidkit.KindState:
		return buildState(doc.Body, opts)
	case mermaidkit.KindPie:
		return buildPie(doc.Body, opts)
	case mermaidkit.KindMindmap:
		return buildMindmap(doc.Body, opts)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, doc.Kind)
	}
}

// Render loads and builds data in one step.
func Render(data []byte, format Format, opts ...diagram.Option) (string, error) {
	doc, err := Load(data, format)
	if err != nil {
		return "", err
	}
	return Build(doc, opts...)
}

// Digest identifies a document for caching. The format takes part in the
// digest since the same bytes may decode differently.
func Digest(format Format, data []byte) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Errors splits an error returned by Build into the individual failures.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// decode maps a generic tree onto a typed body, rejecting unknown keys.
func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// collector accumulates statement failures under their document path.
type collector struct {
	err error
}

func (c *collector) add(path string, err error) {
	if err != nil {
		c.err = multierr.Append(c.err, fmt.Errorf("%s: %w", path, err))
	}
}

func lookup[T any](field string, table map[string]T, name string, def T) (T, error) {
	if name == "" {
		return def, nil
	}
	v, ok := table[strings.ToLower(name)]
	if !ok {
		return def, fmt.Errorf("%w: %s %q", ErrUnknownName, field, name)
	}
	return v, nil
}

func unknown(id string) error {
	return fmt.Errorf("%w %q", ErrUnknownReference, id)
}
