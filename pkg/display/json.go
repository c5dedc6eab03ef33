package display

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/sharelink/pkg/types"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderReport(report *types.SynchronizationReport) error {
	return r.encoder.Encode(report)
}

func (r *jsonRenderer) RenderInspection(inspection *types.Inspection) error {
	return r.encoder.Encode(inspection)
}

func (r *jsonRenderer) RenderLinks(links []types.LinkRecord) error {
	return r.encoder.Encode(linkList{Links: nonNil(links)})
}

// linkList wraps listings so every format has a named root
type linkList struct {
	Links []types.LinkRecord `json:"links" yaml:"links"`
}

func nonNil(links []types.LinkRecord) []types.LinkRecord {
	if links == nil {
		return []types.LinkRecord{}
	}
	return links
}
