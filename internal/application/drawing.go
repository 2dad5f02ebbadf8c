package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/repository"
)

type DrawingService struct {
	Repos *repository.Repos
	Audit *AuditService
	locks *keyedMutex
}

func NewDrawingService(repos *repository.Repos, audit *AuditService) *DrawingService {
	return &DrawingService{
		Repos: repos,
		Audit: audit,
		locks: newKeyedMutex(),
	}
}

func (s *DrawingService) ListProjects() ([]project.Detail, error) {
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, err
	}
	details := make([]project.Detail, 0, len(projects))
	for _, p := range projects {
		d, err := s.expandProject(p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *DrawingService) GetProject(id string) (project.Detail, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return project.Detail{}, lookupErr(err, ErrProjectNotFound)
	}
	return s.expandProject(p)
}

func (s *DrawingService) expandProject(p project.Project) (project.Detail, error) {
	drawings, err := s.Repos.Drawing.ListDrawingsByProject(p.ID)
	if err != nil {
		return project.Detail{}, err
	}
	team := make([]user.User, 0, len(p.TeamMemberIDs))
	for _, uid := range p.TeamMemberIDs {
		u, err := s.Repos.User.GetUserByID(uid)
		if err != nil {
			return project.Detail{}, lookupErr(err, ErrUserNotFound)
		}
		team = append(team, u)
	}
	if drawings == nil {
		drawings = []drawing.Drawing{}
	}
	return project.Detail{Project: p, Drawings: drawings, TeamMembers: team}, nil
}

// ListDrawings returns drawings in insertion order, optionally narrowed to
// one project.
func (s *DrawingService) ListDrawings(projectID *string) ([]drawing.Drawing, error) {
	if projectID != nil {
		return s.Repos.Drawing.ListDrawingsByProject(*projectID)
	}
	return s.Repos.Drawing.ListDrawings()
}

func (s *DrawingService) GetDrawing(id string) (drawing.Drawing, error) {
	d, err := s.Repos.Drawing.GetDrawingByID(id)
	if err != nil {
		return drawing.Drawing{}, lookupErr(err, ErrDrawingNotFound)
	}
	return d, nil
}

func (s *DrawingService) ListVersions(drawingID string) ([]drawing.Version, error) {
	if _, err := s.GetDrawing(drawingID); err != nil {
		return nil, err
	}
	return s.Repos.Drawing.ListVersions(drawingID)
}

// AppendVersion adds the next revision of a drawing. The new version starts
// as a draft and becomes the drawing's current version.
func (s *DrawingService) AppendVersion(ctx context.Context, drawingID, fileURL string, changesSummary *string, createdBy string) (drawing.Version, error) {
	unlock := s.locks.Lock(drawingID)
	defer unlock()

	if _, err := s.GetDrawing(drawingID); err != nil {
		return drawing.Version{}, err
	}
	if _, err := s.Repos.User.GetUserByID(createdBy); err != nil {
		return drawing.Version{}, lookupErr(err, ErrUserNotFound)
	}
	if strings.TrimSpace(fileURL) == "" {
		return drawing.Version{}, ErrInvalidFileURL
	}

	var created drawing.Version
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		d, err := r.Drawing.GetDrawingForUpdate(drawingID)
		if err != nil {
			return lookupErr(err, ErrDrawingNotFound)
		}
		now := touch(d.UpdatedAt)
		v := drawing.Version{
			ID:             NewID(kindVersion),
			DrawingID:      d.ID,
			VersionNumber:  d.NextVersionNumber(),
			CreatedAt:      now,
			CreatedBy:      createdBy,
			FileURL:        fileURL,
			ChangesSummary: changesSummary,
			Status:         drawing.StatusDraft,
		}
		d.UpdatedAt = now
		if err := r.Drawing.AppendVersion(&d, &v); err != nil {
			return fmt.Errorf("append version: %w", err)
		}
		created = v
		return nil
	})
	if err != nil {
		return drawing.Version{}, err
	}

	s.Audit.Record(ctx, ActionCreate, ResourceVersion, created.ID, nil, created,
		fmt.Sprintf("Appended version %d to drawing %s", created.VersionNumber, drawingID))
	return created, nil
}
