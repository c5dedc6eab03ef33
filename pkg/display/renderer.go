package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sharelink/pkg/types"
)

// Renderer writes results in one output format
type Renderer interface {
	// RenderReport renders a synchronize, plan or remove-all report
	RenderReport(report *types.SynchronizationReport) error

	// RenderInspection renders the status of every category
	RenderInspection(inspection *types.Inspection) error

	// RenderLinks renders the category links found in a project
	RenderLinks(links []types.LinkRecord) error
}

// New creates a renderer for format writing to w. FormatAuto is resolved
// against w first.
func New(w io.Writer, format Format) (Renderer, error) {
	switch Resolve(format, w) {
	case FormatTerminal:
		return newTextRenderer(w, true), nil
	case FormatText:
		return newTextRenderer(w, false), nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	case FormatYAML:
		return newYAMLRenderer(w), nil
	case FormatXML:
		return newXMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
