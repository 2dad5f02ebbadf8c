package workflow

import "github.com/linskybing/design-review/internal/domain/drawing"

var transitions = map[drawing.ReviewStatus][]drawing.ReviewStatus{
	drawing.StatusDraft:         {drawing.StatusInReview},
	drawing.StatusInReview:      {drawing.StatusApproved, drawing.StatusRejected, drawing.StatusNeedsRevision},
	drawing.StatusNeedsRevision: {drawing.StatusInReview},
}

// CanTransition reports whether a workflow may move from one status to another.
// Approved and rejected are terminal.
func CanTransition(from, to drawing.ReviewStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s.
func NextStatuses(s drawing.ReviewStatus) []drawing.ReviewStatus {
	next := transitions[s]
	out := make([]drawing.ReviewStatus, len(next))
	copy(out, next)
	return out
}
