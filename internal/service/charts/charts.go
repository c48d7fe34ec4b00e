// Путь: internal/service/charts/charts.go
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"robot-npa-dashboard/internal/domain"
)

// ErrNotEnoughData - данных недостаточно для графика.
// go-chart не умеет рисовать линию из одной точки и пустой круг.
var ErrNotEnoughData = errors.New("not enough data to draw chart")

// Цвета как в исходном дизайне дашборда
const (
	ColorBlue  = "3498db"
	ColorGreen = "27ae60"
	ColorRed   = "e74c3c"
	ColorGray  = "95a5a6"
)

// Renderer рисует графики отчетов в SVG
type Renderer struct {
	width  int
	height int
}

// NewRenderer создает рендерер с размером графиков в пикселях
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// slice - один сектор круговой диаграммы
type slice struct {
	label string
	value int
	color string
}

// EmailDistribution - распределение писем последнего дня
func (r *Renderer) EmailDistribution(d domain.EmailDistribution) ([]byte, error) {
	return r.pie([]slice{
		{"Обработано роботом", d.RobotOnly, ColorBlue},
		{"Перенаправлено", d.Redirected, ColorRed},
		{"Не обработано", d.NotProcessed, ColorGray},
	})
}

// NpaStatus - внедренные и невнедренные изменения
func (r *Renderer) NpaStatus(s domain.NpaSummary) ([]byte, error) {
	return r.pie([]slice{
		{"Внедрено", s.TotalImplemented, ColorGreen},
		{"Не внедрено", s.NotImplemented, ColorRed},
	})
}

// RobotTrend - динамика абсолютных показателей по дням
func (r *Renderer) RobotTrend(days []domain.RobotDailyMetrics) ([]byte, error) {
	if len(days) < 2 {
		return nil, ErrNotEnoughData
	}

	dates := make([]time.Time, len(days))
	total := make([]float64, len(days))
	processed := make([]float64, len(days))
	correct := make([]float64, len(days))
	maxValue := 0.0
	for i, d := range days {
		dates[i] = d.Date.Time
		total[i] = float64(d.TotalEmails)
		processed[i] = float64(d.ProcessedByRobot)
		correct[i] = float64(d.CorrectlyProcessed)
		if total[i] > maxValue {
			maxValue = total[i]
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	return r.lines(dates, maxValue*1.1, []chart.Series{
		timeSeries("Всего писем", ColorBlue, dates, total),
		timeSeries("Обработано", ColorGreen, dates, processed),
		timeSeries("Верно расписано", ColorRed, dates, correct),
	})
}

// RobotEfficiency - проценты обработки по дням
func (r *Renderer) RobotEfficiency(days []domain.RobotDailyMetrics) ([]byte, error) {
	if len(days) < 2 {
		return nil, ErrNotEnoughData
	}

	dates := make([]time.Time, len(days))
	processed := make([]float64, len(days))
	correct := make([]float64, len(days))
	for i, d := range days {
		dates[i] = d.Date.Time
		processed[i] = d.ProcessedPercent
		correct[i] = d.CorrectPercent
	}

	return r.lines(dates, 100, []chart.Series{
		timeSeries("Обработано %", ColorBlue, dates, processed),
		timeSeries("Верно расписано %", ColorGreen, dates, correct),
	})
}

// NpaRates - процент внедрения по каждому документу
func (r *Renderer) NpaRates(docs []domain.NpaDocument) ([]byte, error) {
	if len(docs) == 0 {
		return nil, ErrNotEnoughData
	}

	bars := make([]chart.Value, len(docs))
	for i, d := range docs {
		bars[i] = chart.Value{
			Label: d.DocumentName,
			Value: d.ImplementationRate,
			Style: fill(ColorBlue),
		}
	}

	// Столбцы и промежутки делят ширину поровну
	barWidth := (r.width - 80) / (2*len(docs) + 1)
	if barWidth < 4 {
		barWidth = 4
	}

	bc := chart.BarChart{
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  "Процент внедрения (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) pie(slices []slice) ([]byte, error) {
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		// Нулевые секторы go-chart рисует мусором, пропускаем их
		if s.value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.label, s.value),
			Value: float64(s.value),
			Style: fill(s.color),
		})
	}
	if len(values) == 0 {
		return nil, ErrNotEnoughData
	}

	pc := chart.PieChart{
		Width:  r.height,
		Height: r.height,
		Values: values,
	}
	// Единственный сектор рисуется кругом со стилем SliceStyle, а не Value.Style
	if len(values) == 1 {
		pc.SliceStyle = values[0].Style
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) lines(dates []time.Time, maxY float64, series []chart.Series) ([]byte, error) {
	ch := chart.Chart{
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02.01"),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render line chart: %w", err)
	}
	return buf.Bytes(), nil
}

func timeSeries(name, hex string, dates []time.Time, values []float64) chart.TimeSeries {
	color := drawing.ColorFromHex(hex)
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
			DotColor:    color,
			DotWidth:    3,
		},
		XValues: dates,
		YValues: values,
	}
}

func fill(hex string) chart.Style {
	color := drawing.ColorFromHex(hex)
	return chart.Style{FillColor: color, StrokeColor: color}
}
