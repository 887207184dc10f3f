package maputil

import "github.com/samber/lo"

// MergeTags returns a new map holding the base tags overridden by the extra tags. Neither input is modified.
func MergeTags(base map[string]string, extra ...map[string]string) map[string]string {
	return lo.Assign(append([]map[string]string{{}, base}, extra...)...)
}
