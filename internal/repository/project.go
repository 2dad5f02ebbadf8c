package repository

import (
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	ListProjects() ([]project.Project, error)
	GetProjectByID(id string) (project.Project, error)
	SaveProject(p *project.Project) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.Order("created_at ASC, id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	for i := range projects {
		ids, err := r.drawingIDs(projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].DrawingIDs = ids
	}
	return projects, nil
}

func (r *DBProjectRepo) GetProjectByID(id string) (project.Project, error) {
	var p project.Project
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return p, err
	}
	ids, err := r.drawingIDs(p.ID)
	if err != nil {
		return p, err
	}
	p.DrawingIDs = ids
	return p, nil
}

func (r *DBProjectRepo) drawingIDs(projectID string) ([]string, error) {
	ids := []string{}
	err := r.db.Model(&drawing.Drawing{}).
		Where("project_id = ?", projectID).
		Order("seq ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBProjectRepo) SaveProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
