// Package pipeline holds feature-engineering helpers used by the selection
// layer: the naming convention that ties a derived column back to its source
// input feature, and a simple column-transform pipeline.
package pipeline

import "strings"

// NameSeparator joins a transform prefix to the name of the column it was
// derived from, e.g. "log__price" or "ohe__3__city".
const NameSeparator = "__"

// MapPipelineNames maps each output feature name back to the input feature it
// was derived from. An output name that is itself an input name maps to
// itself; otherwise prefix tokens are stripped one at a time until the
// remaining suffix matches an input name. Output names that trace to no input
// map to themselves, so their scores stay visible rather than vanish.
func MapPipelineNames(inFeatures, outFeatures []string) []string {
	in := make(map[string]struct{}, len(inFeatures))
	for _, f := range inFeatures {
		in[f] = struct{}{}
	}

	mapped := make([]string, len(outFeatures))
	for i, out := range outFeatures {
		mapped[i] = mapName(in, out)
	}
	return mapped
}

func mapName(in map[string]struct{}, out string) string {
	if _, ok := in[out]; ok {
		return out
	}

	tokens := strings.Split(out, NameSeparator)
	for skip := 1; skip < len(tokens); skip++ {
		suffix := strings.Join(tokens[skip:], NameSeparator)
		if _, ok := in[suffix]; ok {
			return suffix
		}
	}
	return out
}
