package document

import (
	"fmt"

	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/flowchart"
)

type flowDoc struct {
	b    *flowchart.Builder
	refs map[string]*flowchart.Node
	errs collector
}

func buildFlowchart(body map[string]any, opts []diagram.Option) (string, error) {
	var def dto.Flowchart
	if err := decode(body, &def); err != nil {
		return "", err
	}
	dir, err := lookup("direction", flowDirections, def.Direction, flowchart.TopDown)
	if err != nil {
		return "", err
	}

	d := &flowDoc{b: flowchart.New(dir, opts...), refs: map[string]*flowchart.Node{}}
	d.nodes("nodes", def.Nodes)
	d.subgraphs("subgraphs", def.Subgraphs)
	for i, e := range def.Edges {
		d.errs.add(fmt.Sprintf("edges[%d]", i), d.edge(e))
	}

	out, err := d.b.Build()
	if err != nil {
		return "", err
	}
	return out, d.errs.err
}

func (d *flowDoc) nodes(path string, nodes []dto.FlowNode) {
	for i, n := range nodes {
		d.errs.add(fmt.Sprintf("%s[%d]", path, i), d.node(n))
	}
}

func (d *flowDoc) node(n dto.FlowNode) error {
	if err := d.claim(n.ID); err != nil {
		return err
	}
	shape, err := lookup("shape", flowShapes, n.Shape, flowchart.Rectangle)
	if err != nil {
		return err
	}
	node, err := d.b.AddNode(n.Text, shape)
	if err != nil {
		return err
	}
	d.refs[n.ID] = node
	return nil
}

func (d *flowDoc) subgraphs(path string, subgraphs []dto.Subgraph) {
	for i, sg := range subgraphs {
		p := fmt.Sprintf("%s[%d]", path, i)
		d.errs.add(p, d.subgraph(p, sg))
	}
}

func (d *flowDoc) subgraph(path string, sg dto.Subgraph) error {
	if err := d.claim(sg.ID); err != nil {
		return err
	}
	node, err := d.b.AddSubgraph(sg.Title, func(b *flowchart.Builder) error {
		if sg.Direction != "" {
			dir, err := lookup("direction", flowDirections, sg.Direction, flowchart.TopDown)
			if err == nil {
				err = b.SetDirection(dir)
			}
			d.errs.add(path+".direction", err)
		}
		d.nodes(path+".nodes", sg.Nodes)
		d.subgraphs(path+".subgraphs", sg.Subgraphs)
		return nil
	})
	if err != nil {
		return err
	}
	d.refs[sg.ID] = node
	return nil
}

func (d *flowDoc) edge(e dto.FlowEdge) error {
	from, ok := d.refs[e.From]
	if !ok {
		return unknown(e.From)
	}
	to, ok := d.refs[e.To]
	if !ok {
		return unknown(e.To)
	}
	style, err := lookup("style", flowStyles, e.Style, flowchart.Solid)
	if err != nil {
		return err
	}
	head, err := lookup("head", flowHeads, e.Head, flowchart.Arrow)
	if err != nil {
		return err
	}
	return d.b.AddEdge(from, to, flowchart.EdgeOptions{
		Label:         e.Label,
		Style:         style,
		Head:          head,
		Bidirectional: e.Bidirectional,
		Length:        e.Length,
	})
}

// claim reserves a document id. Ids are optional for nodes nothing links to.
func (d *flowDoc) claim(id string) error {
	if id == "" {
		return nil
	}
	if _, taken := d.refs[id]; taken {
		return domain.NewError(domain.CodeDuplicateValue, "id", "%q is already defined", id)
	}
	return nil
}
