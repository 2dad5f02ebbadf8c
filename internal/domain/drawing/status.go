package drawing

// ReviewStatus is shared by versions and the review workflows that govern them.
type ReviewStatus string

const (
	StatusDraft         ReviewStatus = "draft"
	StatusInReview      ReviewStatus = "in_review"
	StatusApproved      ReviewStatus = "approved"
	StatusRejected      ReviewStatus = "rejected"
	StatusNeedsRevision ReviewStatus = "needs_revision"
)

// Valid reports whether s is one of the enumerated statuses.
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusApproved, StatusRejected, StatusNeedsRevision:
		return true
	}
	return false
}

// Completed reports whether s concludes a review.
func (s ReviewStatus) Completed() bool {
	return s == StatusApproved || s == StatusRejected
}
