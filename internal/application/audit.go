package application

import (
	"context"
	"encoding/json"

	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/pkg/identity"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionUpload = "upload"
)

const (
	ResourceVersion    = "version"
	ResourceAnnotation = "annotation"
	ResourceReply      = "annotation_reply"
	ResourceWorkflow   = "workflow"
	ResourceFile       = "file"
)

type AuditService struct {
	Repos *repository.Repos
	log   *zap.Logger
}

func NewAuditService(repos *repository.Repos, log *zap.Logger) *AuditService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditService{
		Repos: repos,
		log:   log,
	}
}

// Record stores one audit entry for a mutation that already happened.
// Failures are logged and never surface to the caller.
func (s *AuditService) Record(ctx context.Context, action, resourceType, resourceID string, oldData, newData any, msg string) {
	if s == nil {
		return
	}
	userID, _ := identity.UserID(ctx)
	entry := &audit.AuditLog{
		ID:           NewID(kindAudit),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      toJSON(oldData),
		NewData:      toJSON(newData),
		RequestID:    identity.RequestID(ctx),
		Description:  msg,
		CreatedAt:    Now(),
	}
	if err := s.Repos.Audit.CreateAuditLog(entry); err != nil {
		s.log.Warn("failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return
	}
	s.log.Info(msg,
		zap.String("action", action),
		zap.String("resource_type", resourceType),
		zap.String("resource_id", resourceID),
		zap.String("user_id", userID),
		zap.String("request_id", entry.RequestID),
	)
}

func (s *AuditService) QueryAuditLogs(params audit.QueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs removes entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
