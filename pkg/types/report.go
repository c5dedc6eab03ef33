package types

// Operation names used in reports
const (
	OperationSynchronize = "synchronize"
	OperationPlan        = "plan"
	OperationRemoveAll   = "remove-all"
)

// PathResult records what happened to a single touched path
type PathResult struct {
	Source  string   `json:"source,omitempty" yaml:"source,omitempty"`
	Target  string   `json:"target" yaml:"target"`
	Kind    LinkKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Outcome Outcome  `json:"outcome" yaml:"outcome"`
	// ErrorCode and Reason are set for error and skip outcomes
	ErrorCode string `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// CategoryReport is the per-category entry of a SynchronizationReport
type CategoryReport struct {
	Category  Category `json:"category" yaml:"category"`
	Outcome   Outcome  `json:"outcome" yaml:"outcome"`
	Strategy  Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Source    string   `json:"source" yaml:"source"`
	Target    string   `json:"target" yaml:"target"`
	ErrorCode string   `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	Reason    string   `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Directories lists real directories created while expanding the category
	Directories []string `json:"directories,omitempty" yaml:"directories,omitempty"`

	// Paths holds one result per touched path. A category linked as a unit has a
	// single entry for the category path itself.
	Paths []PathResult `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// AddPath appends a path result
func (c *CategoryReport) AddPath(result PathResult) {
	c.Paths = append(c.Paths, result)
}

// PathCounts tallies path outcomes for the category
func (c *CategoryReport) PathCounts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, p := range c.Paths {
		counts[p.Outcome]++
	}
	return counts
}

// SynchronizationReport is the structured result of synchronize, plan and remove-all.
// It is built by the core and rendered by callers; it never carries a Go error.
type SynchronizationReport struct {
	Operation   string           `json:"operation" yaml:"operation"`
	ProjectRoot string           `json:"projectRoot" yaml:"projectRoot"`
	SharedRoot  string           `json:"sharedRoot,omitempty" yaml:"sharedRoot,omitempty"`
	DryRun      bool             `json:"dryRun" yaml:"dryRun"`
	Categories  []CategoryReport `json:"categories" yaml:"categories"`
}

// NewReport creates an empty report
func NewReport(operation, projectRoot, sharedRoot string) *SynchronizationReport {
	return &SynchronizationReport{
		Operation:   operation,
		ProjectRoot: projectRoot,
		SharedRoot:  sharedRoot,
		Categories:  []CategoryReport{},
	}
}

// Add appends a category entry
func (r *SynchronizationReport) Add(entry CategoryReport) {
	r.Categories = append(r.Categories, entry)
}

// Entry returns the entry for a category
func (r *SynchronizationReport) Entry(category Category) (CategoryReport, bool) {
	for _, e := range r.Categories {
		if e.Category == category {
			return e, true
		}
	}
	return CategoryReport{}, false
}

// Counts tallies category outcomes
func (r *SynchronizationReport) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, e := range r.Categories {
		counts[e.Outcome]++
	}
	return counts
}

// HasErrors reports whether any category ended in a true failure
func (r *SynchronizationReport) HasErrors() bool {
	for _, e := range r.Categories {
		if e.Outcome.IsFailure() {
			return true
		}
	}
	return false
}

// HasChanges reports whether any category mutated the filesystem
func (r *SynchronizationReport) HasChanges() bool {
	for _, e := range r.Categories {
		if e.Outcome.IsChange() {
			return true
		}
	}
	return false
}
