package csmt

// Tree is a Compact Sparse Merkle Tree: an authenticated key-value map
// keyed by uint64, parameterized over a HashPolicy. Its shape (and
// therefore its root digest) is a deterministic function of the current
// set of (key, value) pairs — never of the order of operations that
// produced it. See rebuild, insert and erase for the structural engine
// that keeps this true.
type Tree[V any, D comparable] struct {
	policy HashPolicy[V, D]
	root   *node[D]
	size   int
}

// New returns an empty Tree using policy to turn values into digests.
func New[V any, D comparable](policy HashPolicy[V, D]) *Tree[V, D] {
	return &Tree[V, D]{policy: policy}
}

// Size returns the number of live leaves in the tree.
func (t *Tree[V, D]) Size() int {
	return t.size
}

// debugRoot exposes the root node for in-package structural tests. It is
// not part of the public API (§6's "optional test hook").
func (t *Tree[V, D]) debugRoot() *node[D] {
	return t.root
}

// Insert adds key with value, or updates key's value if already present.
// Size grows by at most one.
func (t *Tree[V, D]) Insert(key uint64, value V) {
	digest := t.policy.LeafHash(value)
	if t.root == nil {
		t.root = newLeaf[D](key, digest)
		t.size++
		return
	}
	t.root = t.insert(t.root, key, digest)
}

func (t *Tree[V, D]) insert(n *node[D], key uint64, digest D) *node[D] {
	if n.leaf {
		if n.key == key {
			n.digest = digest
			return n
		}
		t.size++
		leaf := newLeaf[D](key, digest)
		if key < n.key {
			return newInternal(t.policy, leaf, n)
		}
		return newInternal(t.policy, n, leaf)
	}

	dL := distance(key, n.left.key)
	dR := distance(key, n.right.key)
	switch {
	case dL == dR:
		// key diverges from both children at the same depth: it belongs
		// as a sibling of n itself, not inside either child.
		t.size++
		leaf := newLeaf[D](key, digest)
		minChildKey := n.left.key
		if n.right.key < minChildKey {
			minChildKey = n.right.key
		}
		if key < minChildKey {
			return newInternal(t.policy, leaf, n)
		}
		return newInternal(t.policy, n, leaf)
	case dL < dR:
		n.left = t.insert(n.left, key, digest)
	default:
		n.right = t.insert(n.right, key, digest)
	}
	return rebuild(t.policy, n)
}

// Erase removes key if present; it is a no-op otherwise. Size shrinks by
// at most one.
func (t *Tree[V, D]) Erase(key uint64) {
	t.root = t.erase(t.root, key)
}

func (t *Tree[V, D]) erase(n *node[D], key uint64) *node[D] {
	if n == nil {
		return nil
	}
	if n.leaf {
		if n.key == key {
			t.size--
			return nil
		}
		return n
	}

	if n.left.leaf && n.left.key == key {
		t.size--
		return n.right
	}
	if n.right.leaf && n.right.key == key {
		t.size--
		return n.left
	}

	dL := distance(key, n.left.key)
	dR := distance(key, n.right.key)
	switch {
	case dL == dR:
		// key would have been a sibling of n, not inside it: not present.
		return n
	case dL < dR:
		n.left = t.erase(n.left, key)
	default:
		n.right = t.erase(n.right, key)
	}
	return rebuild(t.policy, n)
}

// Contains reports whether key is present.
func (t *Tree[V, D]) Contains(key uint64) bool {
	n := t.root
	for n != nil {
		if n.leaf {
			return n.key == key
		}
		if n.left.leaf && n.left.key == key {
			return true
		}
		if n.right.leaf && n.right.key == key {
			return true
		}
		dL := distance(key, n.left.key)
		dR := distance(key, n.right.key)
		if dL == dR {
			return false
		}
		if dL < dR {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// MembershipProof returns the ordered sequence of digests on key's path:
// the target leaf's own digest, followed by each ancestor's digest on the
// way up to (and including) the root. It holds no sibling digests, so the
// root cannot be recomputed from the leaf digest with it alone. The
// sequence is empty iff key is absent.
func (t *Tree[V, D]) MembershipProof(key uint64) []D {
	if t.root == nil {
		return nil
	}

	var path []*node[D]
	n := t.root
	for {
		path = append(path, n)
		if n.leaf {
			if n.key != key {
				return nil
			}
			break
		}
		if n.left.leaf && n.left.key == key {
			path = append(path, n.left)
			break
		}
		if n.right.leaf && n.right.key == key {
			path = append(path, n.right)
			break
		}
		dL := distance(key, n.left.key)
		dR := distance(key, n.right.key)
		if dL == dR {
			return nil
		}
		if dL < dR {
			n = n.left
		} else {
			n = n.right
		}
	}

	proof := make([]D, len(path))
	for i, p := range path {
		proof[len(path)-1-i] = p.digest
	}
	return proof
}
