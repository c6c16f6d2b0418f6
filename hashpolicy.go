package csmt

import "crypto/sha256"

// HashPolicy is the two-operation capability the structural engine consumes
// to turn values into leaf digests and pairs of digests into parent
// digests. Both methods must be pure and deterministic; the tree treats D
// as opaque and never inspects it beyond equality.
//
// MergeHash is not assumed commutative — MergeHash(a, b) may differ from
// MergeHash(b, a) — so the structural engine is careful to always call it
// with (left, right) in that order.
type HashPolicy[V any, D comparable] interface {
	LeafHash(value V) D
	MergeHash(left, right D) D
}

// IdentityPolicy is the Identity hash policy used for testing: leaf digests
// are the value unchanged, and merging concatenates. V and D are both
// string so that digests stay human-readable in test failures.
type IdentityPolicy struct{}

func (IdentityPolicy) LeafHash(value string) string {
	return value
}

func (IdentityPolicy) MergeHash(left, right string) string {
	return left + right
}

// SHA256Policy is the production hash policy: SHA-256 with domain
// separation between leaf and interior hashing, so that a leaf digest can
// never be confused with an internal merge (a second-preimage attack that
// would otherwise let an attacker pass off one for the other).
type SHA256Policy struct{}

func (SHA256Policy) LeafHash(value string) [32]byte {
	return sha256.Sum256(append([]byte{'0'}, value...))
}

func (SHA256Policy) MergeHash(left, right [32]byte) [32]byte {
	buf := make([]byte, 0, 1+len(left)+1+len(right))
	buf = append(buf, '1')
	buf = append(buf, left[:]...)
	buf = append(buf, '2')
	buf = append(buf, right[:]...)
	return sha256.Sum256(buf)
}
