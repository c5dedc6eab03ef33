package materializer

import (
	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// PathResult builds the report entry for one touched path
func PathResult(source, target string, kind types.LinkKind, outcome types.Outcome, err error) types.PathResult {
	result := types.PathResult{
		Source:  source,
		Target:  target,
		Kind:    kind,
		Outcome: outcome,
	}
	if err != nil {
		result.ErrorCode = string(errors.GetErrorCode(err))
		result.Reason = errors.Reason(err)
	}
	return result
}
