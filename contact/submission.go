package contact

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrDecode reports a body that could not be read as a submission
var ErrDecode = errors.New("decode submission")

const formContentType = "application/x-www-form-urlencoded"

// Submission is one contact request; absent fields are stored as NULL
type Submission struct {
	FirstName        sql.NullString
	LastName         sql.NullString
	Email            sql.NullString
	Phone            sql.NullString
	AgeGroup         sql.NullString
	ConsultationType sql.NullString
	Date             sql.NullString
	Time             sql.NullString
	Mode             sql.NullString
	Message          sql.NullString
}

// Record is a stored submission
type Record struct {
	ID        string
	CreatedAt time.Time
	Submission
}

// field binds a wire key to its column and struct slot
type field struct {
	key    string
	column string
	slot   func(*Submission) *sql.NullString
}

// fields lists columns in table order
var fields = [...]field{
	{"firstName", "first_name", func(s *Submission) *sql.NullString { return &s.FirstName }},
	{"lastName", "last_name", func(s *Submission) *sql.NullString { return &s.LastName }},
	{"email", "email", func(s *Submission) *sql.NullString { return &s.Email }},
	{"phone", "phone", func(s *Submission) *sql.NullString { return &s.Phone }},
	{"ageGroup", "age_group", func(s *Submission) *sql.NullString { return &s.AgeGroup }},
	{"consultationType", "consultation_type", func(s *Submission) *sql.NullString { return &s.ConsultationType }},
	{"date", "preferred_date", func(s *Submission) *sql.NullString { return &s.Date }},
	{"time", "time_slot", func(s *Submission) *sql.NullString { return &s.Time }},
	{"mode", "meeting_mode", func(s *Submission) *sql.NullString { return &s.Mode }},
	{"message", "message", func(s *Submission) *sql.NullString { return &s.Message }},
}

// Get returns the value of a wire key and whether it was supplied
func (s *Submission) Get(key string) (string, bool) {
	for _, f := range fields {
		if f.key == key {
			v := f.slot(s)
			return v.String, v.Valid
		}
	}
	return "", false
}

// Set assigns a wire key, unknown keys are ignored
func (s *Submission) Set(key, value string) {
	for _, f := range fields {
		if f.key == key {
			*f.slot(s) = sql.NullString{String: value, Valid: true}
			return
		}
	}
}

// Decode parses body as a form when contentType names one, JSON otherwise
// An empty body is an empty submission
func Decode(contentType string, body []byte) (Submission, error) {
	if strings.Contains(strings.ToLower(contentType), formContentType) {
		return decodeForm(body)
	}
	return decodeJSON(body)
}

func decodeForm(body []byte) (Submission, error) {
	var s Submission
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		// Last value wins for repeated keys
		s.Set(formUnescape(key), formUnescape(value))
	}
	return s, nil
}

// formUnescape decodes one form component, keeping the raw text when it holds a bad escape
func formUnescape(v string) string {
	if u, err := url.QueryUnescape(v); err == nil {
		return u
	}
	return strings.ReplaceAll(v, "+", " ")
}

func decodeJSON(body []byte) (Submission, error) {
	var s Submission
	if len(strings.TrimSpace(string(body))) == 0 {
		return s, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return s, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}
	if raw == nil {
		return s, fmt.Errorf("%w: json: null body", ErrDecode)
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		*f.slot(&s) = sql.NullString{String: scalarText(v), Valid: true}
	}
	return s, nil
}

// scalarText renders a JSON value as column text
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	b, _ := json.Marshal(v)
	return string(b)
}
