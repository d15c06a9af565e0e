package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate backs the email rule; the same engine gin uses for binding tags
var validate = validator.New()

// Violations accumulates human-readable validation messages. It satisfies the
// error interface so services can hand it straight back to controllers.
type Violations struct {
	Messages []string
}

func (v *Violations) Error() string {
	return strings.Join(v.Messages, "; ")
}

// Add appends a violation message
func (v *Violations) Add(msg string) {
	v.Messages = append(v.Messages, msg)
}

// HasAny reports whether any violation was recorded
func (v *Violations) HasAny() bool {
	return len(v.Messages) > 0
}

// StringField declares the rules for one string field. Rules run in a fixed
// order and every failing rule reports its message: a nil value reports only
// RequiredMsg, a present value is checked against EmailMsg (when set) and then
// EmptyMsg. Fields are checked in the order they are declared, so a single
// submission reports every problem at once.
type StringField struct {
	Value       *string
	RequiredMsg string // reported when the value is missing or null
	EmptyMsg    string // reported when the value is an empty string
	EmailMsg    string // when non-empty, the value must be a valid email address
}

// Check evaluates every rule of every field and returns the accumulated
// violations, or nil when all fields pass.
func Check(fields []StringField) *Violations {
	violations := &Violations{}

	for _, f := range fields {
		if f.Value == nil {
			violations.Add(f.RequiredMsg)
			continue
		}
		if f.EmailMsg != "" {
			if err := validate.Var(*f.Value, "email"); err != nil {
				violations.Add(f.EmailMsg)
			}
		}
		if *f.Value == "" {
			violations.Add(f.EmptyMsg)
		}
	}

	if !violations.HasAny() {
		return nil
	}
	return violations
}
