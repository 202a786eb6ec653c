package horoscope

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a record reaches the renderer without
// one of the fields the card draws.
var ErrMissingField = errors.New("horoscope: missing field")

// Record is one horoscope message plus the decorative fields filled in
// per request.
type Record struct {
	Message    string `json:"message"`
	Birthdates string `json:"birthdates,omitempty"`
	Date       string `json:"date,omitempty"`
	Sign       string `json:"sign,omitempty"`
	Match      string `json:"match,omitempty"`
	Number     string `json:"number,omitempty"`
	Color      string `json:"color,omitempty"`
	Time       string `json:"time,omitempty"`
}

// Validate checks that every drawn field is populated.
func (r Record) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"sign", r.Sign},
		{"birthdates", r.Birthdates},
		{"date", r.Date},
		{"match", r.Match},
		{"number", r.Number},
		{"color", r.Color},
		{"time", r.Time},
		{"message", r.Message},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
