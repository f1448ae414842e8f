package query

import "context"

// BatchQueryFromText runs the full pipeline for the all-at-once contract:
// text blobs -> fragments -> enabled suffixes -> candidates -> one lookup per
// candidate, strictly in candidate order. Input with no usable fragments
// returns an empty result without touching the suffix source. The first
// failed lookup aborts the batch.
func BatchQueryFromText(ctx context.Context, client Lookuper, configPath string, inputs ...string) ([]*DomainQueryResult, error) {
	bases := ParseTextLines(inputs...)
	if len(bases) == 0 {
		return nil, nil
	}

	suffixes, err := LoadSuffixes(configPath)
	if err != nil {
		return nil, err
	}
	candidates, err := BuildCandidates(bases, suffixes)
	if err != nil {
		return nil, err
	}

	results := make([]*DomainQueryResult, 0, len(candidates))
	for _, domain := range candidates {
		result, err := client.Lookup(ctx, domain)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
