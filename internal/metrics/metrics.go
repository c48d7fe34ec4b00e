// Package metrics содержит счетчики Prometheus, которые отдаются на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsBuilt - успешно построенные отчеты по типу
	ReportsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "reports_built_total",
		Help:      "Number of reports built, by report type.",
	}, []string{"report"})

	// ReportErrors - ошибки построения отчетов по типу и виду ошибки
	ReportErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "report_errors_total",
		Help:      "Number of failed report builds, by report type and error kind.",
	}, []string{"report", "kind"})

	// ChartRenderFailures - графики, которые не удалось нарисовать
	ChartRenderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "chart_render_failures_total",
		Help:      "Number of charts replaced by a placeholder, by chart name.",
	}, []string{"chart"})
)
