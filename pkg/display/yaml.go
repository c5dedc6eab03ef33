package display

import (
	"io"

	"github.com/arthur-debert/sharelink/pkg/types"
	"gopkg.in/yaml.v3"
)

type yamlRenderer struct {
	w io.Writer
}

func newYAMLRenderer(w io.Writer) *yamlRenderer {
	return &yamlRenderer{w: w}
}

func (r *yamlRenderer) encode(v interface{}) error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func (r *yamlRenderer) RenderReport(report *types.SynchronizationReport) error {
	return r.encode(report)
}

func (r *yamlRenderer) RenderInspection(inspection *types.Inspection) error {
	return r.encode(inspection)
}

func (r *yamlRenderer) RenderLinks(links []types.LinkRecord) error {
	return r.encode(linkList{Links: nonNil(links)})
}
