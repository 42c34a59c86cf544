package guard

import (
	"fmt"
	"regexp"
	"strings"
)

// CheckIsNotNullOrBlank returns value unless it is empty or consists only of whitespace.
func CheckIsNotNullOrBlank(value, name string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return value, newError(KindBlankString, name,
			fmt.Sprintf("%s can't be blank string", name),
			map[string]any{"value": value},
		)
	}
	return value, nil
}

// CheckIsNotNullOrBlankPtr is CheckIsNotNullOrBlank for optional strings.
func CheckIsNotNullOrBlankPtr(value *string, name string) (*string, error) {
	if value == nil {
		return value, nullError(name)
	}
	if _, err := CheckIsNotNullOrBlank(*value, name); err != nil {
		return value, err
	}
	return value, nil
}

// CheckMatchesPattern returns value if it contains a match of the regular
// expression pattern. Matching is unanchored; use ^ and $ to match the whole
// string. The pattern is compiled on each call; use CheckMatchesRegexp with a
// precompiled expression on hot paths.
func CheckMatchesPattern(value, pattern, name string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return value, newError(KindInvalidPattern, "pattern",
			fmt.Sprintf("pattern %s used to check %s is not a valid regex: %v", pattern, name, err),
			map[string]any{"pattern": pattern},
		)
	}
	return CheckMatchesRegexp(value, re, name)
}

// CheckMatchesPatternPtr is CheckMatchesPattern for optional strings.
func CheckMatchesPatternPtr(value *string, pattern, name string) (*string, error) {
	if value == nil {
		return value, nullError(name)
	}
	if _, err := CheckMatchesPattern(*value, pattern, name); err != nil {
		return value, err
	}
	return value, nil
}

// CheckMatchesRegexp returns value if re matches it. A *regexp.Regexp is safe
// for concurrent use, so callers may share one across goroutines.
func CheckMatchesRegexp(value string, re *regexp.Regexp, name string) (string, error) {
	if re == nil {
		return value, nullError("re")
	}
	if !re.MatchString(value) {
		return value, newError(KindPatternMismatch, name,
			fmt.Sprintf("%s does not match regex pattern %s its value was '%s'",
				name, re.String(), truncate(value)),
			map[string]any{
				"value":   value,
				"pattern": re.String(),
			},
		)
	}
	return value, nil
}
