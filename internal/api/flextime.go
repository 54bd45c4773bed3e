package api

import (
	"strings"
	"time"
)

// FlexTime unmarshals the kick-off timestamps of the fixtures API, which come
// either as full RFC3339 or without seconds ("2022-11-20T16:00Z").
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}

	var parseErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}
	return parseErr
}
