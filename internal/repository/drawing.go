package repository

import (
	"github.com/linskybing/design-review/internal/domain/drawing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DrawingRepo interface {
	ListDrawings() ([]drawing.Drawing, error)
	ListDrawingsByProject(projectID string) ([]drawing.Drawing, error)
	GetDrawingByID(id string) (drawing.Drawing, error)
	// GetDrawingForUpdate loads the drawing and holds its row lock until the
	// surrounding transaction ends.
	GetDrawingForUpdate(id string) (drawing.Drawing, error)
	CreateDrawing(d *drawing.Drawing) error
	// AppendVersion stores v and moves d's current version pointer to it.
	AppendVersion(d *drawing.Drawing, v *drawing.Version) error
	GetVersionByID(id string) (drawing.Version, error)
	ListVersions(drawingID string) ([]drawing.Version, error)
	UpdateVersionStatus(id string, status drawing.ReviewStatus) error
	WithTx(tx *gorm.DB) DrawingRepo
}

type DBDrawingRepo struct {
	db *gorm.DB
}

func NewDrawingRepo(db *gorm.DB) *DBDrawingRepo {
	return &DBDrawingRepo{
		db: db,
	}
}

func (r *DBDrawingRepo) withVersions() *gorm.DB {
	return r.db.Preload("Versions", func(db *gorm.DB) *gorm.DB {
		return db.Order("version_number ASC")
	})
}

func (r *DBDrawingRepo) ListDrawings() ([]drawing.Drawing, error) {
	var drawings []drawing.Drawing
	if err := r.withVersions().Order("seq ASC").Find(&drawings).Error; err != nil {
		return nil, err
	}
	for i := range drawings {
		drawings[i].SyncCurrent()
	}
	return drawings, nil
}

func (r *DBDrawingRepo) ListDrawingsByProject(projectID string) ([]drawing.Drawing, error) {
	var drawings []drawing.Drawing
	err := r.withVersions().
		Where("project_id = ?", projectID).
		Order("seq ASC").
		Find(&drawings).Error
	if err != nil {
		return nil, err
	}
	for i := range drawings {
		drawings[i].SyncCurrent()
	}
	return drawings, nil
}

func (r *DBDrawingRepo) GetDrawingByID(id string) (drawing.Drawing, error) {
	var d drawing.Drawing
	if err := r.withVersions().Where("id = ?", id).First(&d).Error; err != nil {
		return d, err
	}
	d.SyncCurrent()
	return d, nil
}

func (r *DBDrawingRepo) GetDrawingForUpdate(id string) (drawing.Drawing, error) {
	var d drawing.Drawing
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return d, err
	}
	if err := r.db.Where("drawing_id = ?", id).Order("version_number ASC").Find(&d.Versions).Error; err != nil {
		return d, err
	}
	d.SyncCurrent()
	return d, nil
}

func (r *DBDrawingRepo) CreateDrawing(d *drawing.Drawing) error {
	d.SyncCurrent()
	return r.db.Create(d).Error
}

func (r *DBDrawingRepo) AppendVersion(d *drawing.Drawing, v *drawing.Version) error {
	if err := r.db.Create(v).Error; err != nil {
		return err
	}
	d.Versions = append(d.Versions, *v)
	d.SyncCurrent()
	return r.db.Model(&drawing.Drawing{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"current_version_id": d.CurrentVersionID,
			"updated_at":         d.UpdatedAt,
		}).Error
}

func (r *DBDrawingRepo) GetVersionByID(id string) (drawing.Version, error) {
	var v drawing.Version
	if err := r.db.Where("id = ?", id).First(&v).Error; err != nil {
		return v, err
	}
	return v, nil
}

func (r *DBDrawingRepo) ListVersions(drawingID string) ([]drawing.Version, error) {
	var versions []drawing.Version
	err := r.db.Where("drawing_id = ?", drawingID).Order("version_number ASC").Find(&versions).Error
	return versions, err
}

func (r *DBDrawingRepo) UpdateVersionStatus(id string, status drawing.ReviewStatus) error {
	res := r.db.Model(&drawing.Version{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBDrawingRepo) WithTx(tx *gorm.DB) DrawingRepo {
	if tx == nil {
		return r
	}
	return &DBDrawingRepo{
		db: tx,
	}
}
