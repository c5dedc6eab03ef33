package display

import (
	"io"
	"strconv"

	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/beevik/etree"
)

type xmlRenderer struct {
	w io.Writer
}

func newXMLRenderer(w io.Writer) *xmlRenderer {
	return &xmlRenderer{w: w}
}

func (r *xmlRenderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.w)
	return err
}

// attr sets an attribute unless value is empty
func attr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}

func (r *xmlRenderer) RenderReport(report *types.SynchronizationReport) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	attr(root, "operation", report.Operation)
	attr(root, "projectRoot", report.ProjectRoot)
	attr(root, "sharedRoot", report.SharedRoot)
	root.CreateAttr("dryRun", strconv.FormatBool(report.DryRun))

	for _, entry := range report.Categories {
		el := root.CreateElement("category")
		attr(el, "name", string(entry.Category))
		attr(el, "outcome", string(entry.Outcome))
		attr(el, "strategy", string(entry.Strategy))
		attr(el, "source", entry.Source)
		attr(el, "target", entry.Target)
		attr(el, "errorCode", entry.ErrorCode)
		attr(el, "reason", entry.Reason)

		for _, dir := range entry.Directories {
			el.CreateElement("directory").SetText(dir)
		}
		for _, p := range entry.Paths {
			pel := el.CreateElement("path")
			attr(pel, "target", p.Target)
			attr(pel, "source", p.Source)
			attr(pel, "kind", string(p.Kind))
			attr(pel, "outcome", string(p.Outcome))
			attr(pel, "errorCode", p.ErrorCode)
			attr(pel, "reason", p.Reason)
		}
	}
	return r.write(doc)
}

func (r *xmlRenderer) RenderInspection(inspection *types.Inspection) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inspection")
	attr(root, "projectRoot", inspection.ProjectRoot)
	attr(root, "sharedRoot", inspection.SharedRoot)
	for _, c := range inspection.Categories {
		el := root.CreateElement("category")
		attr(el, "name", string(c.Category))
		attr(el, "status", string(c.Status))
		attr(el, "source", c.Source)
		attr(el, "target", c.Target)
	}
	return r.write(doc)
}

func (r *xmlRenderer) RenderLinks(links []types.LinkRecord) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("links")
	for _, link := range links {
		el := root.CreateElement("link")
		attr(el, "category", string(link.Category))
		attr(el, "target", link.Target)
		attr(el, "destination", link.Destination)
		attr(el, "resolved", link.Resolved)
		el.CreateAttr("broken", strconv.FormatBool(link.Broken))
	}
	return r.write(doc)
}
