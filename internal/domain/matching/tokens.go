package matching

import "strings"

// SplitList normalizes a comma-delimited free-text field into tokens:
// trimmed, lower-cased, empties dropped. Empty input yields an empty slice.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func wordSet(s string) map[string]struct{} {
	return toSet(strings.Fields(strings.ToLower(s)))
}
