package db

import (
	"fmt"

	"github.com/linskybing/design-review/internal/config"
	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the postgres connection string from the loaded configuration.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Open connects to postgres and migrates every review table.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&user.User{},
		&project.Project{},
		&drawing.Drawing{},
		&drawing.Version{},
		&annotation.Annotation{},
		&annotation.Reply{},
		&workflow.ReviewWorkflow{},
		&audit.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
