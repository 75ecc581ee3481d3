package service

import (
	"context"
	"log/slog"

	"ebooklib/database"
	"ebooklib/internal/config"
)

type MaintenanceService interface {
	Backup(ctx context.Context) (string, error)
}

type maintenanceService struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewMaintenanceService(cfg *config.Config, logger *slog.Logger) MaintenanceService {
	return &maintenanceService{cfg: cfg, logger: logger}
}

// Backup snapshots the database file into the configured backup directory.
func (s *maintenanceService) Backup(ctx context.Context) (string, error) {
	path, err := database.Backup(s.cfg.DatabaseURL, s.cfg.BackupDir)
	if err != nil {
		s.logger.Error("database backup failed", "error", err)
		return "", err
	}
	s.logger.Info("database backed up", "path", path)
	return path, nil
}
