package csmt

import "math/bits"

// distance reports the index of the highest bit at which a and b differ,
// counting from 0. For a == b it returns -1, which is smaller than the
// distance between any two distinct keys. Descent calls it with an internal
// child's max key, which can equal the target key; the -1 then steers the
// descent into that child, the subtree that holds the key.
//
// A smaller distance means a and b share a longer common high-order bit
// prefix and so diverge later (deeper in the conceptual full binary trie
// over key bits), i.e. the keys are *closer* together in tree terms.
func distance(a, b uint64) int {
	return 63 - bits.LeadingZeros64(a^b)
}
