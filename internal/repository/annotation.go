package repository

import (
	"github.com/linskybing/design-review/internal/domain/annotation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnnotationRepo interface {
	ListAnnotations(filter annotation.ListFilter) ([]annotation.Annotation, error)
	GetAnnotationByID(id string) (annotation.Annotation, error)
	CreateAnnotation(a *annotation.Annotation) error
	UpdateAnnotation(a *annotation.Annotation) error
	// DeleteAnnotation removes the annotation together with its replies.
	DeleteAnnotation(id string) error
	CreateReply(reply *annotation.Reply) error
	WithTx(tx *gorm.DB) AnnotationRepo
}

type DBAnnotationRepo struct {
	db *gorm.DB
}

func NewAnnotationRepo(db *gorm.DB) *DBAnnotationRepo {
	return &DBAnnotationRepo{
		db: db,
	}
}

func (r *DBAnnotationRepo) withReplies() *gorm.DB {
	return r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	})
}

func (r *DBAnnotationRepo) ListAnnotations(filter annotation.ListFilter) ([]annotation.Annotation, error) {
	var annotations []annotation.Annotation
	query := r.withReplies().Where("drawing_id = ?", filter.DrawingID)
	if filter.VersionID != nil {
		query = query.Where("version_id = ?", *filter.VersionID)
	}
	err := query.Order("seq ASC").Find(&annotations).Error
	return annotations, err
}

func (r *DBAnnotationRepo) GetAnnotationByID(id string) (annotation.Annotation, error) {
	var a annotation.Annotation
	if err := r.withReplies().Where("id = ?", id).First(&a).Error; err != nil {
		return a, err
	}
	return a, nil
}

func (r *DBAnnotationRepo) CreateAnnotation(a *annotation.Annotation) error {
	return r.db.Omit(clause.Associations).Create(a).Error
}

func (r *DBAnnotationRepo) UpdateAnnotation(a *annotation.Annotation) error {
	res := r.db.Model(&annotation.Annotation{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"resolved":   a.Resolved,
			"updated_at": a.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBAnnotationRepo) DeleteAnnotation(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("annotation_id = ?", id).Delete(&annotation.Reply{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&annotation.Annotation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBAnnotationRepo) CreateReply(reply *annotation.Reply) error {
	return r.db.Create(reply).Error
}

func (r *DBAnnotationRepo) WithTx(tx *gorm.DB) AnnotationRepo {
	if tx == nil {
		return r
	}
	return &DBAnnotationRepo{
		db: tx,
	}
}
