// Путь: internal/service/report/service.go
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/metrics"
	repoInterface "robot-npa-dashboard/internal/repository/interface"
	derive "robot-npa-dashboard/internal/service/metrics"
)

// Request - выбор пользователя на дашборде
type Request struct {
	Type  domain.ReportType
	Range domain.DateRange
}

// Result - построенный отчет; заполнено ровно одно поле
type Result struct {
	Type  domain.ReportType
	Robot *domain.RobotReport
	Npa   *domain.NpaReport
}

// Service строит отчеты из источника данных
type Service struct {
	source     repoInterface.ReportSource
	now        func() time.Time
	periodDays int
}

// NewService создает сервис отчетов.
// periodDays - длина периода по умолчанию, now == nil означает time.Now.
func NewService(source repoInterface.ReportSource, now func() time.Time, periodDays int) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{source: source, now: now, periodDays: periodDays}
}

// DefaultRange возвращает интервал по умолчанию: последние days дней до сегодня
func DefaultRange(now time.Time, days int) domain.DateRange {
	today := domain.DateOf(now)
	return domain.DateRange{Start: today.AddDays(-days), End: today}
}

// ResolveRange разбирает границы периода из запроса.
// Пустая граница берется из периода по умолчанию.
func (s *Service) ResolveRange(start, end string) (domain.DateRange, error) {
	rng := DefaultRange(s.now(), s.periodDays)

	if start != "" {
		d, err := domain.ParseDate(start)
		if err != nil {
			return domain.DateRange{}, domain.NewInvalidField("start_date", "expected YYYY-MM-DD")
		}
		rng.Start = d
	}
	if end != "" {
		d, err := domain.ParseDate(end)
		if err != nil {
			return domain.DateRange{}, domain.NewInvalidField("end_date", "expected YYYY-MM-DD")
		}
		rng.End = d
	}

	return domain.NewDateRange(rng.Start, rng.End)
}

// Build выбирает путь построения по типу отчета
func (s *Service) Build(ctx context.Context, req Request) (*Result, error) {
	switch req.Type {
	case domain.ReportRobot:
		robot, err := s.Robot(ctx, req.Range)
		if err != nil {
			return nil, err
		}
		return &Result{Type: req.Type, Robot: robot}, nil
	case domain.ReportNpa:
		npa, err := s.Npa(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Type: req.Type, Npa: npa}, nil
	default:
		return nil, domain.NewInvalidField("report", fmt.Sprintf("unknown report type %q", req.Type))
	}
}

// Robot строит отчет по роботу за интервал
func (s *Service) Robot(ctx context.Context, rng domain.DateRange) (*domain.RobotReport, error) {
	records, err := s.source.RobotDaily(ctx, rng)
	if err != nil {
		return nil, s.fail(domain.ReportRobot, fmt.Errorf("failed to load robot data: %w", err))
	}

	days, err := derive.DeriveRobot(records)
	if err != nil {
		return nil, s.fail(domain.ReportRobot, err)
	}

	latest := days[len(days)-1]
	metrics.ReportsBuilt.WithLabelValues(string(domain.ReportRobot)).Inc()

	return &domain.RobotReport{
		Range:        rng,
		Days:         days,
		Latest:       latest,
		Distribution: latest.Distribution(),
	}, nil
}

// Npa строит отчет по НПА
func (s *Service) Npa(ctx context.Context) (*domain.NpaReport, error) {
	records, err := s.source.NpaDocuments(ctx)
	if err != nil {
		return nil, s.fail(domain.ReportNpa, fmt.Errorf("failed to load npa data: %w", err))
	}

	docs, err := derive.DeriveNpa(records)
	if err != nil {
		return nil, s.fail(domain.ReportNpa, err)
	}

	summary, err := derive.SummarizeNpa(docs)
	if err != nil {
		return nil, s.fail(domain.ReportNpa, err)
	}

	metrics.ReportsBuilt.WithLabelValues(string(domain.ReportNpa)).Inc()

	return &domain.NpaReport{Documents: docs, Summary: summary}, nil
}

// fail учитывает ошибку в метриках и логе и возвращает ее без изменений
func (s *Service) fail(report domain.ReportType, err error) error {
	kind := ErrorKind(err)
	metrics.ReportErrors.WithLabelValues(string(report), kind).Inc()

	logEvent := log.Warn()
	if kind == "internal" {
		logEvent = log.Error()
	}
	logEvent.Err(err).
		Str("report", string(report)).
		Str("kind", kind).
		Msg("report build failed")

	return err
}

// ErrorKind классифицирует ошибку для метрик и HTTP-ответов
func ErrorKind(err error) string {
	var invalid *domain.InvalidInputError
	var empty *domain.EmptyInputError
	switch {
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.As(err, &empty):
		return "empty_input"
	default:
		return "internal"
	}
}
