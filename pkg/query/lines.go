package query

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseTextLines splits one or more text blobs into trimmed, non-empty
// fragments. Blobs are scanned in the order supplied, each split on any of
// \r\n, \r or \n; blank lines are dropped and original order is preserved.
func ParseTextLines(inputs ...string) []string {
	var results []string
	for _, chunk := range inputs {
		if chunk == "" {
			continue
		}
		for _, line := range strings.Split(lineBreaks.Replace(chunk), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				results = append(results, trimmed)
			}
		}
	}
	return results
}

// CombineDomain joins a base fragment with a suffix, avoiding duplicate dots.
// Both operands must be non-empty once surrounding dots are stripped.
func CombineDomain(base, suffix string) (string, error) {
	base = strings.Trim(strings.TrimSpace(base), ".")
	suffix = strings.TrimLeft(strings.TrimSpace(suffix), ".")
	if base == "" || suffix == "" {
		return "", &ValidationError{Reason: "empty base fragment or suffix, cannot combine domain"}
	}
	return base + "." + suffix, nil
}

// BuildCandidates expands fragments against suffixes as a full outer product,
// fragment-major: for each fragment, every suffix in order.
func BuildCandidates(bases, suffixes []string) ([]string, error) {
	candidates := make([]string, 0, len(bases)*len(suffixes))
	for _, base := range bases {
		for _, suffix := range suffixes {
			domain, err := CombineDomain(base, suffix)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, domain)
		}
	}
	return candidates, nil
}
