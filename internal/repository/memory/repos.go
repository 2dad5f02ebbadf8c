package memory

import (
	"errors"
	"sort"
	"time"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/linskybing/design-review/internal/repository"
	"gorm.io/gorm"
)

var errDuplicateKey = errors.New("duplicate key")

// ---------------- users ----------------

type UserRepo struct{ s *Store }

func (r *UserRepo) ListUsers() ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]user.User, 0, len(r.s.users.order))
	r.s.users.each(func(u user.User) { users = append(users, u) })
	return users, nil
}

func (r *UserRepo) GetUserByID(id string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return user.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *UserRepo) SaveUser(u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserRepo) WithTx(*gorm.DB) repository.UserRepo { return r }

// ---------------- projects ----------------

type ProjectRepo struct{ s *Store }

func (r *ProjectRepo) withDrawingIDs(p project.Project) project.Project {
	out := cloneProject(p)
	out.DrawingIDs = []string{}
	r.s.drawings.each(func(d drawing.Drawing) {
		if d.ProjectID == p.ID {
			out.DrawingIDs = append(out.DrawingIDs, d.ID)
		}
	})
	return out
}

func (r *ProjectRepo) ListProjects() ([]project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	projects := make([]project.Project, 0, len(r.s.projects.order))
	r.s.projects.each(func(p project.Project) {
		projects = append(projects, r.withDrawingIDs(p))
	})
	return projects, nil
}

func (r *ProjectRepo) GetProjectByID(id string) (project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects.get(id)
	if !ok {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return r.withDrawingIDs(p), nil
}

func (r *ProjectRepo) SaveProject(p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects.put(p.ID, cloneProject(*p))
	return nil
}

func (r *ProjectRepo) WithTx(*gorm.DB) repository.ProjectRepo { return r }

// ---------------- drawings & versions ----------------

type DrawingRepo struct{ s *Store }

func (r *DrawingRepo) list(match func(drawing.Drawing) bool) []drawing.Drawing {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	drawings := []drawing.Drawing{}
	r.s.drawings.each(func(d drawing.Drawing) {
		if match(d) {
			drawings = append(drawings, cloneDrawing(d))
		}
	})
	return drawings
}

func (r *DrawingRepo) ListDrawings() ([]drawing.Drawing, error) {
	return r.list(func(drawing.Drawing) bool { return true }), nil
}

func (r *DrawingRepo) ListDrawingsByProject(projectID string) ([]drawing.Drawing, error) {
	return r.list(func(d drawing.Drawing) bool { return d.ProjectID == projectID }), nil
}

func (r *DrawingRepo) GetDrawingByID(id string) (drawing.Drawing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.drawings.get(id)
	if !ok {
		return drawing.Drawing{}, gorm.ErrRecordNotFound
	}
	return cloneDrawing(d), nil
}

// GetDrawingForUpdate has no row lock to take; writers are serialized by
// the caller's per-drawing lock.
func (r *DrawingRepo) GetDrawingForUpdate(id string) (drawing.Drawing, error) {
	return r.GetDrawingByID(id)
}

func (r *DrawingRepo) CreateDrawing(d *drawing.Drawing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.drawings.get(d.ID); exists {
		return errDuplicateKey
	}
	for _, v := range d.Versions {
		if _, exists := r.s.versions[v.ID]; exists {
			return errDuplicateKey
		}
	}
	stored := cloneDrawing(*d)
	for _, v := range stored.Versions {
		r.s.versions[v.ID] = stored.ID
	}
	r.s.drawings.put(stored.ID, stored)
	d.SyncCurrent()
	return nil
}

func (r *DrawingRepo) AppendVersion(d *drawing.Drawing, v *drawing.Version) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.drawings.get(d.ID)
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if _, exists := r.s.versions[v.ID]; exists {
		return errDuplicateKey
	}
	for _, existing := range stored.Versions {
		if existing.VersionNumber == v.VersionNumber {
			return errDuplicateKey
		}
	}
	stored = cloneDrawing(stored)
	stored.Versions = append(stored.Versions, *v)
	stored.UpdatedAt = d.UpdatedAt
	stored.SyncCurrent()
	r.s.versions[v.ID] = stored.ID
	r.s.drawings.put(stored.ID, stored)

	*d = cloneDrawing(stored)
	return nil
}

func (r *DrawingRepo) GetVersionByID(id string) (drawing.Version, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	drawingID, ok := r.s.versions[id]
	if !ok {
		return drawing.Version{}, gorm.ErrRecordNotFound
	}
	d, _ := r.s.drawings.get(drawingID)
	v, ok := d.FindVersion(id)
	if !ok {
		return drawing.Version{}, gorm.ErrRecordNotFound
	}
	return *v, nil
}

func (r *DrawingRepo) ListVersions(drawingID string) ([]drawing.Version, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.drawings.get(drawingID)
	if !ok {
		return []drawing.Version{}, nil
	}
	return cloneDrawing(d).Versions, nil
}

func (r *DrawingRepo) UpdateVersionStatus(id string, status drawing.ReviewStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	drawingID, ok := r.s.versions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d, _ := r.s.drawings.get(drawingID)
	d = cloneDrawing(d)
	v, ok := d.FindVersion(id)
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = status
	d.SyncCurrent()
	r.s.drawings.put(d.ID, d)
	return nil
}

func (r *DrawingRepo) WithTx(*gorm.DB) repository.DrawingRepo { return r }

// ---------------- annotations ----------------

type AnnotationRepo struct{ s *Store }

func (r *AnnotationRepo) ListAnnotations(filter annotation.ListFilter) ([]annotation.Annotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	annotations := []annotation.Annotation{}
	r.s.annotations.each(func(a annotation.Annotation) {
		if a.DrawingID != filter.DrawingID {
			return
		}
		if filter.VersionID != nil && a.VersionID != *filter.VersionID {
			return
		}
		annotations = append(annotations, cloneAnnotation(a))
	})
	return annotations, nil
}

func (r *AnnotationRepo) GetAnnotationByID(id string) (annotation.Annotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.annotations.get(id)
	if !ok {
		return annotation.Annotation{}, gorm.ErrRecordNotFound
	}
	return cloneAnnotation(a), nil
}

func (r *AnnotationRepo) CreateAnnotation(a *annotation.Annotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.annotations.get(a.ID); exists {
		return errDuplicateKey
	}
	r.s.annotations.put(a.ID, cloneAnnotation(*a))
	return nil
}

func (r *AnnotationRepo) UpdateAnnotation(a *annotation.Annotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.annotations.get(a.ID)
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored = cloneAnnotation(stored)
	stored.Resolved = a.Resolved
	stored.UpdatedAt = a.UpdatedAt
	r.s.annotations.put(stored.ID, stored)
	return nil
}

func (r *AnnotationRepo) DeleteAnnotation(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.annotations.remove(id) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AnnotationRepo) CreateReply(reply *annotation.Reply) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.annotations.get(reply.AnnotationID)
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, existing := range stored.Replies {
		if existing.ID == reply.ID {
			return errDuplicateKey
		}
	}
	stored = cloneAnnotation(stored)
	stored.Replies = append(stored.Replies, *reply)
	r.s.annotations.put(stored.ID, stored)
	return nil
}

func (r *AnnotationRepo) WithTx(*gorm.DB) repository.AnnotationRepo { return r }

// ---------------- workflows ----------------

type WorkflowRepo struct{ s *Store }

func (r *WorkflowRepo) list(match func(workflow.ReviewWorkflow) bool) []workflow.ReviewWorkflow {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	workflows := []workflow.ReviewWorkflow{}
	r.s.workflows.each(func(w workflow.ReviewWorkflow) {
		if match(w) {
			workflows = append(workflows, cloneWorkflow(w))
		}
	})
	return workflows
}

func (r *WorkflowRepo) ListWorkflows() ([]workflow.ReviewWorkflow, error) {
	return r.list(func(workflow.ReviewWorkflow) bool { return true }), nil
}

func (r *WorkflowRepo) ListWorkflowsByDrawing(drawingID string) ([]workflow.ReviewWorkflow, error) {
	return r.list(func(w workflow.ReviewWorkflow) bool { return w.DrawingID == drawingID }), nil
}

func (r *WorkflowRepo) GetWorkflowByID(id string) (workflow.ReviewWorkflow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.workflows.get(id)
	if !ok {
		return workflow.ReviewWorkflow{}, gorm.ErrRecordNotFound
	}
	return cloneWorkflow(w), nil
}

func (r *WorkflowRepo) GetWorkflowForUpdate(id string) (workflow.ReviewWorkflow, error) {
	return r.GetWorkflowByID(id)
}

func (r *WorkflowRepo) GetWorkflowByVersion(versionID string) (workflow.ReviewWorkflow, error) {
	found := r.list(func(w workflow.ReviewWorkflow) bool { return w.VersionID == versionID })
	if len(found) == 0 {
		return workflow.ReviewWorkflow{}, gorm.ErrRecordNotFound
	}
	return found[0], nil
}

func (r *WorkflowRepo) CreateWorkflow(w *workflow.ReviewWorkflow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.workflows.get(w.ID); exists {
		return errDuplicateKey
	}
	var clash bool
	r.s.workflows.each(func(existing workflow.ReviewWorkflow) {
		clash = clash || existing.VersionID == w.VersionID
	})
	if clash {
		return errDuplicateKey
	}
	r.s.workflows.put(w.ID, cloneWorkflow(*w))
	return nil
}

func (r *WorkflowRepo) UpdateWorkflow(w *workflow.ReviewWorkflow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.workflows.get(w.ID)
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored = cloneWorkflow(stored)
	stored.Status = w.Status
	stored.CompletedAt = w.CompletedAt
	stored.UpdatedAt = w.UpdatedAt
	r.s.workflows.put(stored.ID, stored)
	return nil
}

func (r *WorkflowRepo) WithTx(*gorm.DB) repository.WorkflowRepo { return r }

// ---------------- audit ----------------

type AuditRepo struct{ s *Store }

func (r *AuditRepo) GetAuditLogs(params audit.QueryParams) ([]audit.AuditLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	logs := []audit.AuditLog{}
	r.s.audits.each(func(l audit.AuditLog) {
		switch {
		case params.UserID != nil && l.UserID != *params.UserID,
			params.ResourceType != nil && l.ResourceType != *params.ResourceType,
			params.ResourceID != nil && l.ResourceID != *params.ResourceID,
			params.Action != nil && l.Action != *params.Action,
			params.StartTime != nil && l.CreatedAt.Before(*params.StartTime),
			params.EndTime != nil && l.CreatedAt.After(*params.EndTime):
			return
		}
		logs = append(logs, l)
	})
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if params.Offset > 0 {
		if params.Offset >= len(logs) {
			return []audit.AuditLog{}, nil
		}
		logs = logs[params.Offset:]
	}
	if params.Limit > 0 && params.Limit < len(logs) {
		logs = logs[:params.Limit]
	}
	return logs, nil
}

func (r *AuditRepo) CreateAuditLog(l *audit.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits.put(l.ID, *l)
	return nil
}

func (r *AuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	var stale []string
	r.s.audits.each(func(l audit.AuditLog) {
		if l.CreatedAt.Before(cutoff) {
			stale = append(stale, l.ID)
		}
	})
	for _, id := range stale {
		r.s.audits.remove(id)
	}
	return int64(len(stale)), nil
}

func (r *AuditRepo) WithTx(*gorm.DB) repository.AuditRepo { return r }
