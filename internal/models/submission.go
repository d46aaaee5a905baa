package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// SubmissionRecord is one completed writing test attempt as posted by the test client
type SubmissionRecord struct {
	StudentName Text       `json:"studentName" validate:"required"`
	TestName    Text       `json:"testName" validate:"required"`
	Timestamp   Timestamp  `json:"timestamp" validate:"required"`
	Duration    Text       `json:"duration" validate:"required"`
	Task1       TaskAnswer `json:"task1"`
	Task2       TaskAnswer `json:"task2"`
}

// TaskAnswer holds the question and the student's answer for a single task.
// WordCount is a label pre-formatted by the client (e.g. "Word Count: 152"),
// it is never parsed.
type TaskAnswer struct {
	Question  Text `json:"question"`
	Answer    Text `json:"answer" validate:"required"`
	WordCount Text `json:"wordCount"`
}

// Text is a lenient JSON scalar. Strings are taken as-is, numbers and booleans
// keep their JSON spelling, null leaves the value empty. Objects and arrays are
// kept as their raw JSON so a malformed field never fails the whole record.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// IsEmpty reports whether the field was absent, null or an empty string.
func (t Text) IsEmpty() bool { return t == "" }

// Or returns fallback when the field is empty.
func (t Text) Or(fallback string) string {
	if t.IsEmpty() {
		return fallback
	}
	return string(t)
}

// Timestamp accepts epoch milliseconds (as a number or numeric string) or a
// date string. Values that cannot be parsed are kept in Raw.
type Timestamp struct {
	Time time.Time
	Raw  string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw Text
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	*ts = ParseTimestamp(strings.TrimSpace(raw.String()))
	return nil
}

// ParseTimestamp interprets s as epoch milliseconds or one of the supported
// date layouts.
func ParseTimestamp(s string) Timestamp {
	if s == "" {
		return Timestamp{}
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		return Timestamp{Time: time.UnixMilli(int64(ms)), Raw: s}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: parsed, Raw: s}
		}
	}
	return Timestamp{Raw: s}
}

// IsZero reports whether no timestamp was supplied at all.
func (ts Timestamp) IsZero() bool {
	return ts.Raw == "" && ts.Time.IsZero()
}

// Valid reports whether the supplied value was understood as a point in time.
func (ts Timestamp) Valid() bool {
	return !ts.Time.IsZero()
}
