package adjacency

import (
	"encoding/json"
	"fmt"
)

// encodingJSON is the interchange shape of an Encoding. It mirrors the
// flat arrays historically passed as static data to samplers: per-region
// neighbor counts plus an L×2 link list (L×3 with weights, carried as a
// parallel array). The component count is derived, not serialized.
type encodingJSON struct {
	NeighborCounts []int     `json:"neighbor_counts"`
	Links          [][2]int  `json:"links"`
	Weights        []float64 `json:"weights,omitempty"`
}

// MarshalJSON serializes the encoding in interchange form.
// Complexity: O(N + L).
func (e *Encoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodingJSON{
		NeighborCounts: e.Counts,
		Links:          e.Links,
		Weights:        e.Weights,
	})
}

// UnmarshalJSON deserializes an encoding from interchange form,
// recomputes the component count, and runs Validate so a tampered or
// hand-built payload is rejected here rather than mid-sampling.
// Returns ErrBadEncoding (wrapped) when validation fails.
// Complexity: O(N + L·α(N)).
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var raw encodingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("adjacency: decode encoding: %w", err)
	}

	if len(raw.NeighborCounts) == 0 {
		return fmt.Errorf("%w: no regions", ErrBadEncoding)
	}
	// Range-check before componentCount walks the links.
	for _, l := range raw.Links {
		if l[0] < 0 || l[0] >= len(raw.NeighborCounts) || l[1] < 0 || l[1] >= len(raw.NeighborCounts) {
			return fmt.Errorf("%w: malformed link (%d,%d)", ErrBadEncoding, l[0], l[1])
		}
	}
	dec := Encoding{
		Counts:     raw.NeighborCounts,
		Links:      raw.Links,
		Weights:    raw.Weights,
		Components: componentCount(len(raw.NeighborCounts), raw.Links),
	}
	if err := dec.Validate(); err != nil {
		return err
	}
	*e = dec

	return nil
}
