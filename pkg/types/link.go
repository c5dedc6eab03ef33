package types

// LinkStatus describes the on-disk state of a category path
type LinkStatus string

const (
	// LinkStatusNotPresent means nothing exists at the project path
	LinkStatusNotPresent LinkStatus = "not-present"

	// LinkStatusLinked means the path is a link to the expected shared path and resolves
	LinkStatusLinked LinkStatus = "linked"

	// LinkStatusBroken means the path is a link produced by sharelink that no longer
	// resolves, or that points at a different shared path
	LinkStatusBroken LinkStatus = "broken"

	// LinkStatusRealDirectory means real (non-link) data occupies the path.
	// Regular files are reported the same way.
	LinkStatusRealDirectory LinkStatus = "real-directory"

	// LinkStatusSourceMissing means the shared category does not exist
	LinkStatusSourceMissing LinkStatus = "source-missing"

	// LinkStatusLinkedElsewhere means the path is a link whose destination lies
	// outside the shared root, so it was not produced by sharelink
	LinkStatusLinkedElsewhere LinkStatus = "linked-elsewhere"
)

// LinkRecord is a link found on disk at a category path
type LinkRecord struct {
	Category Category `json:"category" yaml:"category"`
	// Target is the link location inside the project root
	Target string `json:"target" yaml:"target"`
	// Destination is the raw value stored in the link
	Destination string `json:"destination" yaml:"destination"`
	// Resolved is the absolute destination, fully resolved when the link is intact
	Resolved string `json:"resolved" yaml:"resolved"`
	Broken   bool   `json:"broken" yaml:"broken"`
}

// CategoryStatus is one row of an inspection
type CategoryStatus struct {
	Category Category   `json:"category" yaml:"category"`
	Status   LinkStatus `json:"status" yaml:"status"`
	Source   string     `json:"source" yaml:"source"`
	Target   string     `json:"target" yaml:"target"`
}

// Inspection is the ordered status of every category
type Inspection struct {
	ProjectRoot string           `json:"projectRoot" yaml:"projectRoot"`
	SharedRoot  string           `json:"sharedRoot" yaml:"sharedRoot"`
	Categories  []CategoryStatus `json:"categories" yaml:"categories"`
}

// HasProblems reports whether any category is linked but broken
func (i *Inspection) HasProblems() bool {
	for _, c := range i.Categories {
		if c.Status == LinkStatusBroken {
			return true
		}
	}
	return false
}

// Map returns the statuses keyed by category
func (i *Inspection) Map() map[Category]LinkStatus {
	out := make(map[Category]LinkStatus, len(i.Categories))
	for _, c := range i.Categories {
		out[c.Category] = c.Status
	}
	return out
}
