package server

import (
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/valyala/fastjson"

	"groupchat/internal/storage"
)

const (
	maxUsernameLength = 30
	minPasswordLength = 6
	maxPasswordBytes  = 72 // bcrypt input limit
	dateLayout        = "2006-01-02"
)

// fieldError describes a single invalid request field
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fields reads typed values out of a parsed JSON object and collects every problem found
type fields struct {
	v    *fastjson.Value
	errs []fieldError
}

func (f *fields) fail(name, msg string) {
	f.errs = append(f.errs, fieldError{Field: name, Message: msg})
}

func (f *fields) valid() bool {
	return len(f.errs) == 0
}

// present reports whether name exists and is not null
func (f *fields) present(name string) bool {
	v := f.v.Get(name)
	return v != nil && v.Type() != fastjson.TypeNull
}

// requiredString returns a non-blank string field
func (f *fields) requiredString(name string) string {
	if !f.v.Exists(name) {
		f.fail(name, "Required")
		return ""
	}
	v := f.v.Get(name)
	if v.Type() != fastjson.TypeString {
		f.fail(name, "Must be a string")
		return ""
	}
	s := string(v.GetStringBytes())
	if strings.TrimSpace(s) == "" {
		f.fail(name, "Must have non-zero length")
		return ""
	}
	return s
}

// optionalString returns nil for absent or null fields
func (f *fields) optionalString(name string) *string {
	if !f.present(name) {
		return nil
	}
	v := f.v.Get(name)
	if v.Type() != fastjson.TypeString {
		f.fail(name, "Must be a string or null")
		return nil
	}
	s := string(v.GetStringBytes())
	return &s
}

// nullableString keeps absent and null apart for partial updates
func (f *fields) nullableString(name string) storage.Optional {
	if !f.v.Exists(name) {
		return storage.Optional{}
	}
	return storage.Optional{Set: true, Value: f.optionalString(name)}
}

// requiredID returns a positive 64-bit integer field
func (f *fields) requiredID(name string) int64 {
	if !f.v.Exists(name) {
		f.fail(name, "Required")
		return 0
	}
	id, err := f.v.Get(name).Int64()
	if err != nil {
		f.fail(name, "Must be a 64-bit integer value")
		return 0
	}
	if id < 1 {
		f.fail(name, "Must be greater than zero")
		return 0
	}
	return id
}

func (f *fields) checkUsername(name, username string) {
	if username == "" {
		return
	}
	if len([]rune(username)) > maxUsernameLength {
		f.fail(name, "Must be at most 30 characters")
		return
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		f.fail(name, "Must not contain whitespace")
	}
}

func (f *fields) checkEmail(name, email string) {
	if email == "" {
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		f.fail(name, "Must be a valid email address")
	}
}

func (f *fields) checkPassword(name, password string) {
	switch {
	case password == "":
	case len(password) < minPasswordLength:
		f.fail(name, "Must be at least 6 characters")
	case len(password) > maxPasswordBytes:
		f.fail(name, "Must be at most 72 bytes")
	}
}

func (f *fields) checkDate(name string, date *string) {
	if date == nil {
		return
	}
	if _, err := time.Parse(dateLayout, *date); err != nil {
		f.fail(name, "Must be a date in YYYY-MM-DD format")
	}
}
