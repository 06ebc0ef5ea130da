package utils

// UniqueStrings removes duplicates, keeping the first occurrence order
func UniqueStrings(values []string) []string {
	if values == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Difference returns the values of want that are not in have, in want order
func Difference(want []string, have map[string]struct{}) []string {
	var missing []string
	for _, v := range want {
		if _, ok := have[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}
