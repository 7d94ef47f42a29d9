package models

// Verdict is the interpreted decision of a human validation reply.
type Verdict string

// Verdicts produced by the reply interpreter. Only the first four are stored
// on a ValidationResponse; question and unclear keep the poller waiting.
const (
	VerdictApprove       Verdict = "approve"
	VerdictReject        Verdict = "reject"
	VerdictAbandon       Verdict = "abandon"
	VerdictClarification Verdict = "clarification_needed"
	VerdictQuestion      Verdict = "question"
	VerdictUnclear       Verdict = "unclear"
)

// Terminal reports whether the verdict resolves the validation request.
func (v Verdict) Terminal() bool {
	switch v {
	case VerdictApprove, VerdictReject, VerdictAbandon:
		return true
	}
	return false
}

// AnalysisMethod identifies how a reply was interpreted.
type AnalysisMethod string

// Analysis methods.
const (
	MethodRule  AnalysisMethod = "rule"
	MethodModel AnalysisMethod = "model"
)

// Interpretation is the interpreter's output for a single reply.
type Interpretation struct {
	Verdict    Verdict
	Confidence float64
	Method     AnalysisMethod

	// Instructions carries the modification text extracted from a reject.
	Instructions string
}

// ValidationResult is what the coordinator hands back to the scheduler once
// a validation request resolves.
type ValidationResult struct {
	Verdict      Verdict
	Instructions string

	// RejectionCount is the chain count after this verdict.
	RejectionCount int

	// AutoApproved is set when a permissions failure on the prompt post was
	// coerced to approval.
	AutoApproved bool

	// SystemNote records coercions (rejection limit, auto-approval cause).
	SystemNote string
}
