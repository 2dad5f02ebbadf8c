package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Id prefixes per entity kind.
const (
	kindProject    = "proj"
	kindDrawing    = "draw"
	kindVersion    = "ver"
	kindAnnotation = "ann"
	kindWorkflow   = "wf"
	kindAudit      = "audit"
)

// NewID returns "<kind>-<uuidv7>". v7 ids sort by creation time.
func NewID(kind string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return kind + "-" + id.String()
}

func replyID(annotationID string, n int) string {
	return fmt.Sprintf("%s-reply-%d", annotationID, n)
}

// Now is the server clock. Tests replace it to pin timestamps.
var Now = func() time.Time {
	return time.Now().UTC()
}

// touch returns the current time, never earlier than since.
func touch(since time.Time) time.Time {
	now := Now()
	if now.Before(since) {
		return since
	}
	return now
}
