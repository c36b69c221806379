package document

import (
	"fmt"

	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/mindmap"
)

func buildMindmap(body map[string]any, opts []diagram.Option) (string, error) {
	var def dto.Mindmap
	if err := decode(body, &def); err != nil {
		return "", err
	}

	b := mindmap.New(opts...)
	var errs collector
	shape, err := lookup("shape", mindShapes, def.Root.Shape, mindmap.Default)
	if err == nil {
		_, err = b.Root(def.Root.Text, shape, children(&errs, "root", def.Root))
	}
	errs.add("root", err)

	out, err := b.Build()
	if err != nil {
		return "", err
	}
	return out, errs.err
}

// children returns the body adding n's icon and child nodes. Failing
// children are recorded and skipped.
func children(errs *collector, path string, n dto.MindNode) func(*mindmap.Builder) error {
	return func(b *mindmap.Builder) error {
		if n.Icon != "" {
			errs.add(path+".icon", b.Icon(n.Icon))
		}
		for i, child := range n.Children {
			p := fmt.Sprintf("%s.children[%d]", path, i)
			shape, err := lookup("shape", mindShapes, child.Shape, mindmap.Default)
			if err == nil {
				_, err = b.AddNode(child.Text, shape, children(errs, p, child))
			}
			errs.add(p, err)
		}
		return nil
	}
}
