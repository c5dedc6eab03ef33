package types

// Outcome is the result recorded for a category or for one touched path
type Outcome string

const (
	OutcomeLinked               Outcome = "linked"
	OutcomeHealed               Outcome = "healed"
	OutcomeSkippedExists        Outcome = "skipped-exists"
	OutcomeSkippedMissingSource Outcome = "skipped-missing-source"
	OutcomeRemoved              Outcome = "removed"
	OutcomeNotPresent           Outcome = "not-present"
	OutcomeNotALink             Outcome = "not-a-link"
	OutcomeError                Outcome = "error"
)

// AllOutcomes lists outcomes in display order
func AllOutcomes() []Outcome {
	return []Outcome{
		OutcomeLinked,
		OutcomeHealed,
		OutcomeRemoved,
		OutcomeSkippedExists,
		OutcomeSkippedMissingSource,
		OutcomeNotPresent,
		OutcomeNotALink,
		OutcomeError,
	}
}

// IsChange reports whether the outcome mutated the filesystem
func (o Outcome) IsChange() bool {
	switch o {
	case OutcomeLinked, OutcomeHealed, OutcomeRemoved:
		return true
	}
	return false
}

// IsFailure reports whether the outcome is a true failure, as opposed to a skip
func (o Outcome) IsFailure() bool {
	return o == OutcomeError
}
