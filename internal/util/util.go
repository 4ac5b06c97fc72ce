// Package util holds small text helpers shared by usecases.
package util

import (
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

// ErrNotPositiveInteger is returned when a quantity is not a finite whole number above zero.
var ErrNotPositiveInteger = errors.New("value must be a positive whole number")

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips every HTML tag from user-entered text and trims it.
func SanitizeText(s string) string {
	cleaned := strictPolicy.Sanitize(s)

	// StrictPolicy escapes entities; the text is rendered as data, never as markup.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// ParsePositiveInt parses a user-entered quantity. Whole-valued decimals such as
// "3.0" are accepted; fractions, zero, negatives and non-numbers are not.
func ParsePositiveInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNotPositiveInteger
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNotPositiveInteger, "parse %q", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 || value != math.Trunc(value) || value > math.MaxInt32 {
		return 0, ErrNotPositiveInteger
	}

	return int(value), nil
}
