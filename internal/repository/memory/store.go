// Package memory is a process-local implementation of the repository
// interfaces. Every collection lives behind one RWMutex; records are copied
// on the way in and out so callers never share slices with the store.
package memory

import (
	"sync"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/linskybing/design-review/internal/repository"
)

// ordered keeps records by id and remembers insertion order.
type ordered[T any] struct {
	items map[string]T
	order []string
}

func newOrdered[T any]() *ordered[T] {
	return &ordered[T]{items: make(map[string]T)}
}

func (o *ordered[T]) get(id string) (T, bool) {
	v, ok := o.items[id]
	return v, ok
}

func (o *ordered[T]) put(id string, v T) {
	if _, exists := o.items[id]; !exists {
		o.order = append(o.order, id)
	}
	o.items[id] = v
}

func (o *ordered[T]) remove(id string) bool {
	if _, exists := o.items[id]; !exists {
		return false
	}
	delete(o.items, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

func (o *ordered[T]) each(fn func(T)) {
	for _, id := range o.order {
		fn(o.items[id])
	}
}

type Store struct {
	mu sync.RWMutex

	users       *ordered[user.User]
	projects    *ordered[project.Project]
	drawings    *ordered[drawing.Drawing]
	versions    map[string]string // version id -> drawing id
	annotations *ordered[annotation.Annotation]
	workflows   *ordered[workflow.ReviewWorkflow]
	audits      *ordered[audit.AuditLog]
}

func NewStore() *Store {
	return &Store{
		users:       newOrdered[user.User](),
		projects:    newOrdered[project.Project](),
		drawings:    newOrdered[drawing.Drawing](),
		versions:    make(map[string]string),
		annotations: newOrdered[annotation.Annotation](),
		workflows:   newOrdered[workflow.ReviewWorkflow](),
		audits:      newOrdered[audit.AuditLog](),
	}
}

// NewRepositories returns repositories backed by a fresh in-memory store.
func NewRepositories() *repository.Repos {
	return NewStore().Repos()
}

func (s *Store) Repos() *repository.Repos {
	return &repository.Repos{
		User:       &UserRepo{s: s},
		Project:    &ProjectRepo{s: s},
		Drawing:    &DrawingRepo{s: s},
		Annotation: &AnnotationRepo{s: s},
		Workflow:   &WorkflowRepo{s: s},
		Audit:      &AuditRepo{s: s},
	}
}

func cloneDrawing(d drawing.Drawing) drawing.Drawing {
	out := d
	out.Versions = append([]drawing.Version(nil), d.Versions...)
	if out.Versions == nil {
		out.Versions = []drawing.Version{}
	}
	out.SyncCurrent()
	return out
}

func cloneAnnotation(a annotation.Annotation) annotation.Annotation {
	out := a
	out.Replies = append([]annotation.Reply(nil), a.Replies...)
	if out.Replies == nil {
		out.Replies = []annotation.Reply{}
	}
	return out
}

func cloneProject(p project.Project) project.Project {
	out := p
	out.TeamMemberIDs = append([]string(nil), p.TeamMemberIDs...)
	out.DrawingIDs = nil
	return out
}

func cloneWorkflow(w workflow.ReviewWorkflow) workflow.ReviewWorkflow {
	out := w
	out.ReviewerIDs = append([]string(nil), w.ReviewerIDs...)
	return out
}
