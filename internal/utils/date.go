package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/config"
)

// StartNextDay возвращает начало следующего дня в той же таймзоне
func StartNextDay(t time.Time) time.Time {
	newDate := t.AddDate(0, 0, 1)
	return StartCurrentDay(newDate)
}

func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey возвращает календарный день t в таймзоне loc
func DayKey(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = config.TimeZone
	}
	return StartCurrentDay(t.In(loc))
}

// ParseDate парсит дату из строки в формате RFC3339 (секунды можно опустить), если не удается, то пробует парсить дату со временем, но без таймзоны
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err == nil {
		return parsedDate, nil
	}

	parsedDate, err = time.Parse("2006-01-02T15:04Z07:00", str)
	if err == nil {
		return parsedDate, nil
	}

	// Без таймзоны берем таймзону из конфига
	location := config.TimeZone
	parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation(time.DateOnly, str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
