package domain

import (
	"encoding/json"
	"time"
)

// DateLayout - формат календарной даты в запросах и ответах
const DateLayout = "2006-01-02"

// Date - календарная дата без времени и часового пояса.
// Внутри хранится полночь UTC.
type Date struct {
	time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Equal сравнивает только календарные даты
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange - интервал дат, обе границы включены
type DateRange struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// NewDateRange проверяет, что начало не позже конца
func NewDateRange(start, end Date) (DateRange, error) {
	if start.After(end.Time) {
		return DateRange{}, NewInvalidField("start_date", "start date is after end date")
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains проверяет попадание даты в интервал
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// Days возвращает количество дней в интервале
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start.Time).Hours()/24) + 1
}
