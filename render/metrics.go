package render

import (
	"fmt"
	"slices"
	"strings"
)

// FormatMetrics renders a registry snapshot as sorted key=value pairs
func FormatMetrics(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s=%g", k, m[k])
	}
	return b.String()
}
