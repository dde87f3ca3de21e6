package adjacency_test

import (
	"encoding/json"
	"testing"

	"github.com/arealstats/besag/adjacency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip verifies an encoding survives JSON interchange,
// including the derived component count.
func TestCodec_RoundTrip(t *testing.T) {
	neighbors, err := adjacency.Grid(3, 2)
	require.NoError(t, err)
	enc, err := adjacency.Encode(neighbors)
	require.NoError(t, err)

	data, err := json.Marshal(enc)
	require.NoError(t, err)

	var back adjacency.Encoding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *enc, back, "round trip must preserve the encoding exactly")
}

// TestCodec_RoundTripWeighted verifies the weighted interchange form.
func TestCodec_RoundTripWeighted(t *testing.T) {
	enc, err := adjacency.Encode([][]int{{1}, {0, 2}, {1}},
		adjacency.WithWeights(map[[2]int]float64{{0, 1}: 0.25}))
	require.NoError(t, err)

	data, err := json.Marshal(enc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"weights"`, "explicit weights must be serialized")

	var back adjacency.Encoding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *enc, back)
}

// TestCodec_RejectTampered verifies hand-built payloads that violate
// structural invariants are rejected on decode.
func TestCodec_RejectTampered(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"counts disagree with links", `{"neighbor_counts":[2,1],"links":[[0,1]]}`},
		{"isolated region", `{"neighbor_counts":[1,1,0],"links":[[0,1]]}`},
		{"link out of range", `{"neighbor_counts":[1,1],"links":[[0,5]]}`},
		{"self link", `{"neighbor_counts":[2,0],"links":[[0,0]]}`},
		{"reversed pair", `{"neighbor_counts":[1,1],"links":[[1,0]]}`},
		{"duplicate link", `{"neighbor_counts":[2,2],"links":[[0,1],[0,1]]}`},
		{"no regions", `{"neighbor_counts":[],"links":[]}`},
		{"bad weight", `{"neighbor_counts":[1,1],"links":[[0,1]],"weights":[-1]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var enc adjacency.Encoding
			err := json.Unmarshal([]byte(tc.payload), &enc)
			assert.ErrorIs(t, err, adjacency.ErrBadEncoding)
		})
	}
}

// TestCodec_RejectMalformedJSON verifies syntactic failures surface as
// decode errors rather than zero-value encodings.
func TestCodec_RejectMalformedJSON(t *testing.T) {
	var enc adjacency.Encoding
	err := json.Unmarshal([]byte(`{"neighbor_counts":"nope"}`), &enc)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, adjacency.ErrBadEncoding, "syntax errors are not validation errors")
}
