package model

import "fmt"

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%s at index %d has no id", kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
