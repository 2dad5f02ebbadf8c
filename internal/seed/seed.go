// Package seed loads the demo dataset the review UI ships against.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/linskybing/design-review/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultFixture []byte

type Fixture struct {
	Users       []userRow       `yaml:"users"`
	Projects    []projectRow    `yaml:"projects"`
	Drawings    []drawingRow    `yaml:"drawings"`
	Annotations []annotationRow `yaml:"annotations"`
	Workflows   []workflowRow   `yaml:"workflows"`
}

type userRow struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Email  string  `yaml:"email"`
	Role   string  `yaml:"role"`
	Avatar *string `yaml:"avatar"`
}

type projectRow struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description *string  `yaml:"description"`
	Team        []string `yaml:"team"`
	CreatedAt   string   `yaml:"created_at"`
}

type versionRow struct {
	ID             string  `yaml:"id"`
	CreatedAt      string  `yaml:"created_at"`
	CreatedBy      string  `yaml:"created_by"`
	FileURL        string  `yaml:"file_url"`
	ChangesSummary *string `yaml:"changes_summary"`
	Status         string  `yaml:"status"`
}

type drawingRow struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Description *string      `yaml:"description"`
	ProjectID   string       `yaml:"project_id"`
	CreatedAt   string       `yaml:"created_at"`
	UpdatedAt   string       `yaml:"updated_at"`
	Versions    []versionRow `yaml:"versions"`
}

type replyRow struct {
	ID        string `yaml:"id"`
	AuthorID  string `yaml:"author_id"`
	Content   string `yaml:"content"`
	CreatedAt string `yaml:"created_at"`
}

type annotationRow struct {
	ID        string             `yaml:"id"`
	DrawingID string             `yaml:"drawing_id"`
	VersionID string             `yaml:"version_id"`
	Type      string             `yaml:"type"`
	AuthorID  string             `yaml:"author_id"`
	Content   string             `yaml:"content"`
	Position  map[string]float64 `yaml:"position"`
	CreatedAt string             `yaml:"created_at"`
	UpdatedAt string             `yaml:"updated_at"`
	Resolved  bool               `yaml:"resolved"`
	Replies   []replyRow         `yaml:"replies"`
}

type workflowRow struct {
	ID        string   `yaml:"id"`
	DrawingID string   `yaml:"drawing_id"`
	VersionID string   `yaml:"version_id"`
	Status    string   `yaml:"status"`
	Reviewers []string `yaml:"reviewers"`
	DueDate   string   `yaml:"due_date"`
	CreatedAt string   `yaml:"created_at"`
}

// Parse decodes a YAML fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	return &f, nil
}

// Default returns the embedded demo dataset.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// LoadFile reads a fixture from path, or the embedded one when path is empty.
func LoadFile(path string) (*Fixture, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Apply writes the fixture into repos. A store that already holds the
// fixture's first user is left untouched. It reports whether data was written.
func Apply(repos *repository.Repos, f *Fixture) (bool, error) {
	if len(f.Users) > 0 {
		_, err := repos.User.GetUserByID(f.Users[0].ID)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
	}

	err := repos.ExecTx(func(r *repository.Repos) error {
		for _, row := range f.Users {
			u := user.User{ID: row.ID, Name: row.Name, Email: row.Email, Role: user.Role(row.Role), Avatar: row.Avatar}
			if !u.Role.Valid() {
				return fmt.Errorf("user %s: unknown role %q", row.ID, row.Role)
			}
			if err := r.User.SaveUser(&u); err != nil {
				return fmt.Errorf("seed user %s: %w", row.ID, err)
			}
		}
		for _, row := range f.Projects {
			p, err := row.toProject()
			if err != nil {
				return err
			}
			if err := r.Project.SaveProject(&p); err != nil {
				return fmt.Errorf("seed project %s: %w", row.ID, err)
			}
		}
		for _, row := range f.Drawings {
			d, err := row.toDrawing()
			if err != nil {
				return err
			}
			if err := r.Drawing.CreateDrawing(&d); err != nil {
				return fmt.Errorf("seed drawing %s: %w", row.ID, err)
			}
		}
		for _, row := range f.Annotations {
			a, replies, err := row.toAnnotation()
			if err != nil {
				return err
			}
			if err := r.Annotation.CreateAnnotation(&a); err != nil {
				return fmt.Errorf("seed annotation %s: %w", row.ID, err)
			}
			for i := range replies {
				if err := r.Annotation.CreateReply(&replies[i]); err != nil {
					return fmt.Errorf("seed reply %s: %w", replies[i].ID, err)
				}
			}
		}
		for _, row := range f.Workflows {
			w, err := row.toWorkflow()
			if err != nil {
				return err
			}
			if err := r.Workflow.CreateWorkflow(&w); err != nil {
				return fmt.Errorf("seed workflow %s: %w", row.ID, err)
			}
		}
		return nil
	})
	return err == nil, err
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t.UTC(), nil
}

func (row projectRow) toProject() (project.Project, error) {
	created, err := parseTime("project "+row.ID+" created_at", row.CreatedAt)
	if err != nil {
		return project.Project{}, err
	}
	return project.Project{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		TeamMemberIDs: append([]string{}, row.Team...),
		CreatedAt:     created,
	}, nil
}

func (row drawingRow) toDrawing() (drawing.Drawing, error) {
	created, err := parseTime("drawing "+row.ID+" created_at", row.CreatedAt)
	if err != nil {
		return drawing.Drawing{}, err
	}
	updated, err := parseTime("drawing "+row.ID+" updated_at", row.UpdatedAt)
	if err != nil {
		return drawing.Drawing{}, err
	}
	d := drawing.Drawing{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ProjectID:   row.ProjectID,
		CreatedAt:   created,
		UpdatedAt:   updated,
		Versions:    []drawing.Version{},
	}
	for i, vr := range row.Versions {
		vc, err := parseTime("version "+vr.ID+" created_at", vr.CreatedAt)
		if err != nil {
			return drawing.Drawing{}, err
		}
		status := drawing.ReviewStatus(vr.Status)
		if !status.Valid() {
			return drawing.Drawing{}, fmt.Errorf("version %s: unknown status %q", vr.ID, vr.Status)
		}
		d.Versions = append(d.Versions, drawing.Version{
			ID:             vr.ID,
			DrawingID:      row.ID,
			VersionNumber:  i + 1,
			CreatedAt:      vc,
			CreatedBy:      vr.CreatedBy,
			FileURL:        vr.FileURL,
			ChangesSummary: vr.ChangesSummary,
			Status:         status,
		})
	}
	d.SyncCurrent()
	return d, nil
}

func (row annotationRow) toAnnotation() (annotation.Annotation, []annotation.Reply, error) {
	created, err := parseTime("annotation "+row.ID+" created_at", row.CreatedAt)
	if err != nil {
		return annotation.Annotation{}, nil, err
	}
	updated := created
	if row.UpdatedAt != "" {
		if updated, err = parseTime("annotation "+row.ID+" updated_at", row.UpdatedAt); err != nil {
			return annotation.Annotation{}, nil, err
		}
	}
	a := annotation.Annotation{
		ID:        row.ID,
		DrawingID: row.DrawingID,
		VersionID: row.VersionID,
		Type:      annotation.Type(row.Type),
		AuthorID:  row.AuthorID,
		Content:   row.Content,
		Position: annotation.Position{
			X:      row.Position["x"],
			Y:      row.Position["y"],
			Width:  row.Position["width"],
			Height: row.Position["height"],
		},
		Resolved:  row.Resolved,
		CreatedAt: created,
		UpdatedAt: updated,
		Replies:   []annotation.Reply{},
	}
	if !a.Type.Valid() {
		return annotation.Annotation{}, nil, fmt.Errorf("annotation %s: unknown type %q", row.ID, row.Type)
	}
	replies := make([]annotation.Reply, 0, len(row.Replies))
	for _, rr := range row.Replies {
		rc, err := parseTime("reply "+rr.ID+" created_at", rr.CreatedAt)
		if err != nil {
			return annotation.Annotation{}, nil, err
		}
		replies = append(replies, annotation.Reply{
			ID:           rr.ID,
			AnnotationID: row.ID,
			AuthorID:     rr.AuthorID,
			Content:      rr.Content,
			CreatedAt:    rc,
		})
	}
	return a, replies, nil
}

func (row workflowRow) toWorkflow() (workflow.ReviewWorkflow, error) {
	created, err := parseTime("workflow "+row.ID+" created_at", row.CreatedAt)
	if err != nil {
		return workflow.ReviewWorkflow{}, err
	}
	w := workflow.ReviewWorkflow{
		ID:          row.ID,
		DrawingID:   row.DrawingID,
		VersionID:   row.VersionID,
		Status:      drawing.ReviewStatus(row.Status),
		ReviewerIDs: append([]string{}, row.Reviewers...),
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if !w.Status.Valid() {
		return workflow.ReviewWorkflow{}, fmt.Errorf("workflow %s: unknown status %q", row.ID, row.Status)
	}
	if row.DueDate != "" {
		due, err := parseTime("workflow "+row.ID+" due_date", row.DueDate)
		if err != nil {
			return workflow.ReviewWorkflow{}, err
		}
		w.DueDate = &due
	}
	if w.Status.Completed() {
		completed := created
		w.CompletedAt = &completed
	}
	return w, nil
}
