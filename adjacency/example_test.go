package adjacency_test

import (
	"fmt"

	"github.com/arealstats/besag/adjacency"
)

// ExampleEncode demonstrates encoding a four-region square:
//
//	0───1
//	│   │
//	2───3
//
// Each region borders its two orthogonal neighbors, yielding four
// undirected links and one contiguous component.
func ExampleEncode() {
	neighbors := [][]int{
		{1, 2},
		{0, 3},
		{0, 3},
		{1, 2},
	}

	enc, err := adjacency.Encode(neighbors)
	if err != nil {
		fmt.Println("encode failed:", err)

		return
	}

	fmt.Println("regions:", enc.NumRegions())
	fmt.Println("links:", enc.Links)
	fmt.Println("counts:", enc.Counts)
	fmt.Println("components:", enc.Components)
	// Output:
	// regions: 4
	// links: [[0 1] [0 2] [1 3] [2 3]]
	// counts: [2 2 2 2]
	// components: 1
}

// ExampleBuilder demonstrates accumulating adjacency from a pair
// stream, the shape polygon-contiguity tools usually emit.
func ExampleBuilder() {
	b, _ := adjacency.NewBuilder(3)
	_ = b.AddPair(0, 1)
	_ = b.AddPair(1, 2)

	enc, _ := b.Encode()
	fmt.Println("links:", enc.Links)
	fmt.Println("chain counts:", enc.Counts)
	// Output:
	// links: [[0 1] [1 2]]
	// chain counts: [1 2 1]
}
