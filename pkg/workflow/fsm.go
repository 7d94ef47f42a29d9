// Package workflow drives staged runs: the stage graph, the typed stage
// adapters, and the executor that persists a context snapshot after every
// stage so a crashed run resumes where it stopped.
package workflow

import (
	"fmt"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// stageDone marks run completion; it is not a stage.
const stageDone = ""

// NextStage resolves the stage that follows current given the accumulated
// run context. The two cycles in the graph — debug↻test and the rejection
// edge back to implement — are both bounded by counters on the context, so
// every walk terminates.
func NextStage(current string, rc *models.RunContext, maxDebugAttempts int) (string, error) {
	switch current {
	case models.StagePrepare:
		return models.StageAnalyze, nil
	case models.StageAnalyze:
		return models.StageImplement, nil
	case models.StageImplement:
		return models.StageTest, nil
	case models.StageTest:
		if rc.TestsPassed {
			return models.StageQA, nil
		}
		if rc.DebugAttempts < maxDebugAttempts {
			return models.StageDebug, nil
		}
		// Debug budget exhausted: proceed with the failure on record rather
		// than looping forever. QA and the human validator see the marker.
		return models.StageQA, nil
	case models.StageDebug:
		return models.StageTest, nil
	case models.StageQA:
		return models.StageFinalizePR, nil
	case models.StageFinalizePR:
		return models.StageHumanValidation, nil
	case models.StageMerge:
		return stageDone, nil
	case models.StageHumanValidation:
		// Resolved by the validation verdict, not the graph.
		return "", fmt.Errorf("human_validation is resolved by a verdict, not a transition")
	default:
		return "", fmt.Errorf("unknown stage %q", current)
	}
}

// VerdictNextStage resolves where a run goes after its validation verdict.
// Returns the next stage for resumable verdicts, or terminal=true with the
// effective verdict otherwise. A rejection at the limit is coerced to
// abandon so the chain cannot grow unboundedly.
func VerdictNextStage(verdict models.Verdict, rejectionCount, maxRejections int) (next string, effective models.Verdict, terminal bool) {
	switch verdict {
	case models.VerdictApprove:
		return models.StageMerge, models.VerdictApprove, false
	case models.VerdictReject:
		if rejectionCount >= maxRejections {
			return "", models.VerdictAbandon, true
		}
		return models.StageImplement, models.VerdictReject, false
	case models.VerdictAbandon:
		return "", models.VerdictAbandon, true
	default:
		// Clarification and unclear replies never move the run; the poller
		// keeps waiting.
		return "", verdict, false
	}
}
