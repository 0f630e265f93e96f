package formflow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StringValidator validates a string value.
type StringValidator func(string) error

// Check adapts string validators to a field Validator: the field passes
// when every validator accepts its current text.
func Check(vs ...StringValidator) Validator {
	return func(h FieldHandle) bool {
		for _, v := range vs {
			if v(h.Text()) != nil {
				return false
			}
		}
		return true
	}
}

// VRequired rejects empty strings.
func VRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VEmail rejects strings that don't look like email addresses.
func VEmail(s string) error {
	if !strings.Contains(s, "@") || !strings.Contains(s, ".") {
		return fmt.Errorf("invalid email")
	}
	at := strings.LastIndex(s, "@")
	if at == 0 || at == len(s)-1 {
		return fmt.Errorf("invalid email")
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// VMinLen rejects strings shorter than n.
func VMinLen(n int) StringValidator {
	return func(s string) error {
		if len(s) < n {
			return fmt.Errorf("min %d characters", n)
		}
		return nil
	}
}

// VMaxLen rejects strings longer than n.
func VMaxLen(n int) StringValidator {
	return func(s string) error {
		if len(s) > n {
			return fmt.Errorf("max %d characters", n)
		}
		return nil
	}
}

// VMatch rejects strings that don't match the given regex pattern.
// Empty strings pass; combine with VRequired to reject those too.
func VMatch(pattern string) StringValidator {
	re := regexp.MustCompile(pattern)
	return func(s string) error {
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return fmt.Errorf("invalid format")
		}
		return nil
	}
}

// VNumber rejects strings that don't parse as a number. Empty strings
// pass.
func VNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}
