// internal/handler/options.go
package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// numberedList renders selectable options as "N — value" lines for a
// conversation prompt.
func numberedList(options []string) string {
	var b strings.Builder
	for i, option := range options {
		b.WriteString(fmt.Sprintf("%d — %s\n", i+1, option))
	}
	return b.String()
}

// pickOption resolves a numeric reply to its 1-based option. Anything else,
// including out-of-range numbers, is kept as free text.
func pickOption(options []string, input string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return input
}
