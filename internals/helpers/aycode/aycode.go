// Package aycode parses academic-year codes such as "2025-26", "2025/26"
// or "AY2025-26". The code identifies one admissions/teaching cycle by its
// 4-digit start year plus the 2-digit year that follows it.
package aycode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidCode = errors.New("invalid academic year code")

var codeRe = regexp.MustCompile(`^(?:AY)?(\d{4})[-/](\d{2})$`)

// Parse extracts the 4-digit start year from an AY code. The 2-digit suffix
// must be the start year plus one, modulo 100 ("2025-26", not "2025-27").
func Parse(code string) (int, error) {
	m := codeRe.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	startYear, _ := strconv.Atoi(m[1])
	suffix, _ := strconv.Atoi(m[2])
	if suffix != (startYear+1)%100 {
		return 0, fmt.Errorf("%w: %q (suffix must be %02d)", ErrInvalidCode, code, (startYear+1)%100)
	}
	return startYear, nil
}

// Valid reports whether code parses as an academic year code.
func Valid(code string) bool {
	_, err := Parse(code)
	return err == nil
}

// Format renders the canonical code ("2025-26") for a start year.
func Format(startYear int) string {
	return fmt.Sprintf("%04d-%02d", startYear, (startYear+1)%100)
}
