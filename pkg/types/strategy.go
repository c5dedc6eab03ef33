package types

// LinkKind distinguishes directory links from file links
type LinkKind string

const (
	LinkKindDirectory LinkKind = "directory"
	LinkKindFile      LinkKind = "file"
)

// Strategy is the linking strategy chosen for one shared path
type Strategy string

const (
	// StrategyNone is used when no decision was made (source missing, target skipped)
	StrategyNone Strategy = ""

	// StrategyDirectoryLink links a directory that holds no files at any depth as one unit
	StrategyDirectoryLink Strategy = "directory-link"

	// StrategyFileLink links a single non-directory entry
	StrategyFileLink Strategy = "file-link"

	// StrategyExpand mirrors the directory as a real directory and evaluates each child
	StrategyExpand Strategy = "expand"
)

// Kind returns the link kind produced by the strategy
func (s Strategy) Kind() LinkKind {
	if s == StrategyFileLink {
		return LinkKindFile
	}
	return LinkKindDirectory
}

// LinkDecision is the result of evaluating one shared path against its project path
type LinkDecision struct {
	Source   string   `json:"source" yaml:"source"`
	Target   string   `json:"target" yaml:"target"`
	Kind     LinkKind `json:"kind" yaml:"kind"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	// Recurse is set when children must be evaluated individually
	Recurse bool `json:"recurse" yaml:"recurse"`
}

// NewLinkDecision builds a decision for the given strategy
func NewLinkDecision(source, target string, strategy Strategy) LinkDecision {
	return LinkDecision{
		Source:   source,
		Target:   target,
		Kind:     strategy.Kind(),
		Strategy: strategy,
		Recurse:  strategy == StrategyExpand,
	}
}
