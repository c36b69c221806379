package document

import (
	"fmt"

	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/pie"
)

func buildPie(body map[string]any, opts []diagram.Option) (string, error) {
	var def dto.Pie
	if err := decode(body, &def); err != nil {
		return "", err
	}

	b := pie.New(opts...)
	if def.ShowData {
		b.ShowData()
	}
	var errs collector
	for i, s := range def.Slices {
		errs.add(fmt.Sprintf("slices[%d]", i), b.AddSlice(s.Label, s.Value))
	}

	out, err := b.Build()
	if err != nil {
		return "", err
	}
	return out, errs.err
}
