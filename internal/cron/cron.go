package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AuditCleaner deletes audit entries older than a retention window.
type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask runs one cleanup right away and then on schedule. The
// returned scheduler must be stopped on shutdown.
func StartCleanupTask(cleaner AuditCleaner, schedule string, retentionDays int, log *zap.Logger) (*cron.Cron, error) {
	if retentionDays <= 0 {
		return nil, fmt.Errorf("audit retention must be positive, got %d days", retentionDays)
	}

	c := cron.New()
	job := func() { runCleanup(cleaner, retentionDays, log) }
	if _, err := c.AddFunc(schedule, job); err != nil {
		return nil, fmt.Errorf("invalid audit cleanup schedule %q: %w", schedule, err)
	}

	log.Info("Starting background cleanup task",
		zap.String("schedule", schedule),
		zap.Int("retention_days", retentionDays),
	)
	go job()
	c.Start()
	return c, nil
}

func runCleanup(cleaner AuditCleaner, retentionDays int, log *zap.Logger) {
	removed, err := cleaner.CleanupOldLogs(retentionDays)
	if err != nil {
		log.Error("Failed to cleanup old audit logs", zap.Error(err))
		return
	}
	log.Info("Audit log cleanup completed", zap.Int64("removed", removed))
}
