package adjacency_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arealstats/besag/adjacency"
)

// neighborsFromPairs turns a raw pair list over n regions into
// per-region lists, mirroring what upstream contiguity tools emit.
func neighborsFromPairs(n int, pairs [][2]int) [][]int {
	out := make([][]int, n)
	for _, p := range pairs {
		i, j := p[0]%n, p[1]%n
		if i == j {
			continue
		}
		out[i] = append(out[i], j)
		out[j] = append(out[j], i)
	}

	return out
}

// genRelation generates random symmetric relations: a region count in
// [2, 40] and a pair list folded into range by neighborsFromPairs.
func genRelation() gopter.Gen {
	return gen.IntRange(2, 40).FlatMap(func(v interface{}) gopter.Gen {
		n := v.(int)

		return gen.SliceOf(gen.IntRange(0, n*n-1)).Map(func(raw []int) [][]int {
			pairs := make([][2]int, len(raw))
			for idx, r := range raw {
				pairs[idx] = [2]int{r / n, r % n}
			}

			return neighborsFromPairs(n, pairs)
		})
	}, reflect.TypeOf([][]int{}))
}

// TestEncodeProperties verifies structural invariants of Encode over
// randomly generated symmetric relations. Relations with isolated
// regions are expected to be rejected; everything that encodes must
// satisfy the handshake lemma, positive counts, and strict link order.
func TestEncodeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("encoded relations satisfy structural invariants", prop.ForAll(
		func(neighbors [][]int) bool {
			enc, err := adjacency.Encode(neighbors)
			if err != nil {
				// Random relations may leave isolated regions; that
				// rejection is the only acceptable failure here.
				return errors.Is(err, adjacency.ErrIsolatedRegion)
			}

			total := 0
			for _, c := range enc.Counts {
				if c < 1 {
					return false
				}
				total += c
			}
			if total != 2*enc.NumLinks() {
				return false
			}
			for li, l := range enc.Links {
				if l[0] >= l[1] {
					return false
				}
				if li > 0 {
					prev := enc.Links[li-1]
					if l[0] < prev[0] || (l[0] == prev[0] && l[1] <= prev[1]) {
						return false
					}
				}
			}

			return enc.Validate() == nil
		},
		genRelation(),
	))

	properties.Property("encoding is idempotent", prop.ForAll(
		func(neighbors [][]int) bool {
			first, err1 := adjacency.Encode(neighbors)
			second, err2 := adjacency.Encode(neighbors)
			if err1 != nil || err2 != nil {
				return (err1 == nil) == (err2 == nil)
			}
			if first.NumLinks() != second.NumLinks() {
				return false
			}
			for li := range first.Links {
				if first.Links[li] != second.Links[li] {
					return false
				}
			}

			return true
		},
		genRelation(),
	))

	properties.TestingRun(t)
}
