// Package segrange renders and parses compact segmentation id ranges such as
// "10-12, 20".
package segrange

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Separator joins the rendered tokens of a grouped range string.
const Separator = ", "

// Wildcard replaces absent values in the non-numeric rendering.
const Wildcard = "*"

// ErrInvalidSpan is returned by ParseSpan for anything but "MIN-MAX".
var ErrInvalidSpan = errors.New("Expecting MIN_VALUE-MAX_VALUE in range list") //nolint:staticcheck // shown to users verbatim

// FormatGroupedRanges collapses segmentation ids into runs of consecutive
// integers, e.g. ["1","2","3","7","9","10"] becomes "1-3, 7, 9-10".
//
// If any value is not a base-10 integer the whole input is rendered as a
// sorted list instead, with empty values shown as "*". It never fails.
func FormatGroupedRanges(values []string) string {
	ids, ok := parseAll(values)
	if !ok {
		return formatRaw(values)
	}

	sort.Ints(ids)

	var parts []string
	for _, run := range runs(ids) {
		first, last := run[0], run[len(run)-1]
		if first == last {
			parts = append(parts, strconv.Itoa(first))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", first, last))
		}
	}
	return strings.Join(parts, Separator)
}

func parseAll(values []string) ([]int, bool) {
	if len(values) == 0 {
		return nil, false
	}
	ids := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		ids = append(ids, n)
	}
	return ids, true
}

// runs splits sorted ids into groups where id-index is constant.
func runs(sorted []int) [][]int {
	var (
		groups [][]int
		offset int
	)
	for i, id := range sorted {
		if len(groups) == 0 || id-i != offset {
			groups = append(groups, []int{id})
			offset = id - i
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], id)
	}
	return groups
}

func formatRaw(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	for i, v := range sorted {
		if v == "" {
			sorted[i] = Wildcard
		}
	}
	return strings.Join(sorted, Separator)
}

// Expand turns a grouped range string back into the individual ids it covers.
// Tokens may be separated by commas with optional whitespace. A dash that
// follows a digit separates span bounds; any other dash is a sign.
func Expand(s string) ([]int, error) {
	var ids []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, _, isSpan := cutSpan(tok); !isSpan {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid segmentation id %q: %w", tok, err)
			}
			ids = append(ids, n)
			continue
		}
		lo, hi, err := ParseSpan(tok)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, fmt.Errorf("invalid range %q: minimum exceeds maximum", tok)
		}
		for n := lo; n <= hi; n++ {
			ids = append(ids, n)
		}
	}
	return ids, nil
}

// ParseSpan parses a "MIN-MAX" value as given to --range. Either bound may
// be negative, so "-3--2" is the span from -3 to -2.
func ParseSpan(s string) (minimum, maximum int, err error) {
	lo, hi, ok := cutSpan(strings.TrimSpace(s))
	if !ok {
		return 0, 0, ErrInvalidSpan
	}
	minimum, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid minimum %q", ErrInvalidSpan, lo)
	}
	maximum, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid maximum %q", ErrInvalidSpan, hi)
	}
	return minimum, maximum, nil
}

// cutSpan splits s at the first '-' that follows a digit. A leading '-' is
// a sign, not a separator.
func cutSpan(s string) (lo, hi string, ok bool) {
	for i := 1; i < len(s); i++ {
		if s[i] == '-' && s[i-1] >= '0' && s[i-1] <= '9' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
