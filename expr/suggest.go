// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSimilarity is the lowest Levenshtein similarity for which
// a name is offered as a suggestion.
const minSimilarity = 0.5

// suggest returns the candidate most similar to name,
// or "" if none is similar enough.
func suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	slices.Sort(candidates)
	best, bestScore := "", 0.0
	for _, c := range candidates {
		if c == name {
			continue
		}
		s := strutil.Similarity(name, c, lev)
		if s >= minSimilarity && s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}
