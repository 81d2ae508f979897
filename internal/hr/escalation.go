package hr

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"onboardly/internal/models"
)

// Log is the append-only HR issue log. New escalations open in status Open;
// this service never updates or closes them.
type Log struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLog(db *gorm.DB, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{db: db, logger: logger}
}

// Save appends one escalation entry.
func (l *Log) Save(ctx context.Context, employeeName, issueDescription string) (models.Escalation, error) {
	entry := models.Escalation{
		Date:             time.Now().Format("2006-01-02"),
		EmployeeName:     employeeName,
		IssueDescription: issueDescription,
		Status:           "Open",
	}
	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return models.Escalation{}, eris.Wrap(err, "save escalation")
	}
	l.logger.Info("escalation recorded",
		zap.String("employee", employeeName),
		zap.Uint("id", entry.ID))
	return entry, nil
}

// List returns every logged escalation, oldest first.
func (l *Log) List(ctx context.Context) ([]models.Escalation, error) {
	var entries []models.Escalation
	if err := l.db.WithContext(ctx).Order("id asc").Find(&entries).Error; err != nil {
		return nil, eris.Wrap(err, "list escalations")
	}
	return entries, nil
}
