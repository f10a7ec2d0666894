// Package validator accumulates field-level violations and reports them as a
// map of field name to message.
package validator

import "regexp"

type Validator struct {
	Violations map[string]string
}

func New() *Validator {
	return &Validator{Violations: make(map[string]string)}
}

// Valid reports whether no violation has been recorded.
func (v *Validator) Valid() bool {
	return len(v.Violations) == 0
}

// AddViolation records key as failing with message. The first violation
// recorded for a field wins.
func (v *Validator) AddViolation(key, message string) {
	if _, exists := v.Violations[key]; !exists {
		v.Violations[key] = message
	}
}

// Check records a violation for key only when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddViolation(key, message)
	}
}

func In[T comparable](value T, list ...T) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
