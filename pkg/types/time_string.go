package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeLayout формат времени суток: 24 часа, с секундами
const TimeLayout = "15:04:05"

const (
	secondsPerMinute = 60
	secondsPerDay    = 24 * 60 * 60
)

var (
	// ErrInvalidTime возвращается при некорректной строке времени
	ErrInvalidTime = errors.New("types: invalid time string format")

	// ErrTimeOverflow возвращается, когда сдвиг выводит время за пределы суток
	ErrTimeOverflow = errors.New("types: time is out of day range")
)

// TimeString время суток без даты и часового пояса ("09:30:00")
type TimeString string

// NewTimeString берет время суток из time.Time (дата и пояс отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString парсит строку строго в формате HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != len(TimeLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return NewTimeString(t), nil
}

// MustTimeString паникует при некорректной строке, удобно для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// Seconds количество секунд от полуночи.
// Для некорректного значения возвращает -1.
func (t TimeString) Seconds() int {
	parsed, err := time.Parse(TimeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*3600 + parsed.Minute()*secondsPerMinute + parsed.Second()
}

// AddMinutes сдвигает время на minutes минут в пределах одних суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	s := t.Seconds()
	if s < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, string(t))
	}
	shifted := s + minutes*secondsPerMinute
	if shifted < 0 || shifted >= secondsPerDay {
		return "", fmt.Errorf("%w: %s %+d min", ErrTimeOverflow, t, minutes)
	}
	return timeStringFromSeconds(shifted), nil
}

// IsBefore строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Seconds() < other.Seconds()
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Seconds() > other.Seconds()
}

// Equal совпадает с other с точностью до секунды
func (t TimeString) Equal(other TimeString) bool {
	return t.Seconds() == other.Seconds()
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner. lib/pq отдает колонку TIME как time.Time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTime, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func timeStringFromSeconds(s int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/secondsPerMinute, s%secondsPerMinute))
}
