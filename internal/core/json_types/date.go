package json_types

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/utils"
)

var errNotString = errors.New("json_types: expected a JSON string")

func unquote(data []byte) (string, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return "", errNotString
	}
	return str, nil
}

// DateTime принимает RFC3339 и даты без таймзоны, отдает RFC3339
type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := utils.ParseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.RFC3339))
}

// Date is a calendar day rendered as YYYY-MM-DD.
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := utils.ParseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: utils.StartCurrentDay(parsedDate)}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.DateOnly))
}

func (t Date) String() string {
	return t.Date.Format(time.DateOnly)
}
