package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректной строке даты
var ErrInvalidDate = errors.New("types: invalid date string format")

// Date календарная дата без времени ("2025-10-15")
type Date string

// NewDate берет дату из time.Time
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// NewDateFromString парсит строку строго в формате YYYY-MM-DD
func NewDateFromString(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// MustDate паникует при некорректной строке
func MustDate(s string) Date {
	d, err := NewDateFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String возвращает строковое представление
func (d Date) String() string {
	return string(d)
}

// IsZero true, если дата не задана
func (d Date) IsZero() bool {
	return d == ""
}

// Validate проверяет формат
func (d Date) Validate() error {
	_, err := NewDateFromString(string(d))
	return err
}

// Time возвращает полночь этой даты в UTC. Для некорректной даты нулевое время.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday номер дня недели: 0 = понедельник ... 6 = воскресенье
func (d Date) Weekday() int {
	return MondayBasedWeekday(d.Time().Weekday())
}

// Before строго раньше other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After строго позже other
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// At объединяет дату и время суток в одну точку во времени (UTC, без пояса)
func (d Date) At(t TimeString) time.Time {
	seconds := t.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	return d.Time().Add(time.Duration(seconds) * time.Second)
}

// MondayBasedWeekday переводит time.Weekday (0 = воскресенье) в 0 = понедельник
func MondayBasedWeekday(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

// Scan реализует sql.Scanner. lib/pq отдает колонку DATE как time.Time.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
