// Package validation evaluates declarative per-field rule sets against form
// values. Evaluation is synchronous and produces at most one error message
// per field: the first failing rule wins, an absent entry means the field is
// currently valid.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Rule is a single constraint on a field value. Valid receives the field's
// own value plus the whole value map for cross-field checks.
type Rule struct {
	Valid   func(value string, values map[string]string) bool
	Message string
}

// FieldRules is the ordered rule chain for one named field.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Schema is an ordered set of per-field rule chains.
type Schema []FieldRules

// Validate evaluates the schema against values and returns a field→message
// map holding the first failing rule's message for each invalid field.
func (s Schema) Validate(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, fr := range s {
		v := values[fr.Field]
		for _, r := range fr.Rules {
			if !r.Valid(v, values) {
				errs[fr.Field] = r.Message
				break
			}
		}
	}
	return errs
}

// Fields returns the schema's field names in declaration order.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s))
	for _, fr := range s {
		names = append(names, fr.Field)
	}
	return names
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required fails on values that are empty after trimming whitespace.
func Required(msg string) Rule {
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			return strings.TrimSpace(v) != ""
		},
		Message: msg,
	}
}

// Email fails on values that are not a well-formed address. Empty values
// pass; pair with Required when the field is mandatory.
func Email(msg string) Rule {
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			v = strings.TrimSpace(v)
			return v == "" || emailRe.MatchString(v)
		},
		Message: msg,
	}
}

// MinLen fails on non-empty values shorter than n runes.
func MinLen(n int, msg string) Rule {
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			return v == "" || utf8.RuneCountInString(v) >= n
		},
		Message: msg,
	}
}

// MaxLen fails on values longer than n runes.
func MaxLen(n int, msg string) Rule {
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			return utf8.RuneCountInString(v) <= n
		},
		Message: msg,
	}
}

// Matches fails on non-empty values not containing a match of pattern.
func Matches(pattern, msg string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			return v == "" || re.MatchString(v)
		},
		Message: msg,
	}
}

// EqualTo fails unless the value exactly equals the named peer field.
func EqualTo(field, msg string) Rule {
	return Rule{
		Valid: func(v string, values map[string]string) bool {
			return v == values[field]
		},
		Message: msg,
	}
}

// Positive fails unless the value parses as a decimal number strictly
// greater than zero. Unparsable input (including empty) fails too.
func Positive(msg string) Rule {
	return Rule{
		Valid: func(v string, _ map[string]string) bool {
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			return err == nil && d.IsPositive()
		},
		Message: msg,
	}
}
