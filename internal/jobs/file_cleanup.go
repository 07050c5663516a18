// File: internal/jobs/file_cleanup.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"cadastro_backend/internal/config"
	"cadastro_backend/internal/file"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FileCleanupJob periodically purges uploaded files no account references.
type FileCleanupJob struct {
	fileService   *file.Service
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewFileCleanupJob creates a new FileCleanupJob.
func NewFileCleanupJob(fileService *file.Service, logger *zap.Logger, cfg *config.Config) *FileCleanupJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))
	return &FileCleanupJob{
		fileService:   fileService,
		logger:        logger.Named("FileCleanupJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *FileCleanupJob) SetupAndStart() error {
	jobSpec := j.cfg.FileCleanupJobSchedule
	if jobSpec == "" {
		j.logger.Warn("File cleanup schedule not defined (FILE_CLEANUP_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule file cleanup job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("File cleanup job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *FileCleanupJob) runJob() {
	j.logger.Info("Starting file cleanup run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	purged, err := j.fileService.PurgeOrphans(ctx)
	if err != nil {
		j.logger.Error("File cleanup run failed", zap.Error(err))
		return
	}
	j.logger.Info("File cleanup run completed", zap.Int("files_purged", purged))
}

// Stop gracefully stops the cron scheduler.
func (j *FileCleanupJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping file cleanup scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("File cleanup scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("File cleanup scheduler stop timed out.")
	}
}

// --- Cron Logger Adapter ---

type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger adapts zap.Logger to the cron.Logger interface.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
