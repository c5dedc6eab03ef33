package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeIndicator(t *testing.T) {
	assert.Equal(t, FailedIndicator, OutcomeIndicator(types.OutcomeError))
	assert.Equal(t, ChangedIndicator, OutcomeIndicator(types.OutcomeLinked))
	assert.Equal(t, HealedIndicator, OutcomeIndicator(types.OutcomeHealed))
	assert.Equal(t, BlockedIndicator, OutcomeIndicator(types.OutcomeNotALink))
	assert.Equal(t, SkippedIndicator, OutcomeIndicator(types.OutcomeSkippedExists))
}

func TestBadge(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	for _, outcome := range types.AllOutcomes() {
		got := Badge(OutcomeStyle(outcome), string(outcome), 22)
		assert.Contains(t, got, " "+string(outcome)+strings.Repeat(" ", 22-len(outcome))+" ")
	}
	assert.Contains(t, Badge(StatusStyle(types.LinkStatusLinked), "linked", 0), " linked ")
}
