package _interface

import (
	"context"

	"robot-npa-dashboard/internal/domain"
)

// ReportSource - источник исходных данных для отчетов.
// Каждый вызов возвращает новые срезы, вызывающий может их менять.
type ReportSource interface {
	// RobotDaily возвращает дни из интервала rng по возрастанию даты
	RobotDaily(ctx context.Context, rng domain.DateRange) ([]domain.RobotDailyRecord, error)

	// NpaDocuments возвращает все документы НПА
	NpaDocuments(ctx context.Context) ([]domain.NpaDocumentRecord, error)
}
