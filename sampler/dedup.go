package sampler

// DedupSet holds the artifacts accepted during one run. Artifacts are
// bucketed by Hash and compared with Equal inside a bucket, so hash
// collisions never merge distinct artifacts.
type DedupSet[A Artifact[A]] struct {
	buckets map[uint64][]A
	size    int
}

// NewDedupSet returns an empty set.
func NewDedupSet[A Artifact[A]]() *DedupSet[A] {
	return &DedupSet[A]{buckets: make(map[uint64][]A)}
}

// Contains reports whether an artifact equal to a was inserted.
func (d *DedupSet[A]) Contains(a A) bool {
	for _, b := range d.buckets[a.Hash()] {
		if b.Equal(a) {
			return true
		}
	}
	return false
}

// Insert adds a and reports true, or reports false if an equal artifact is
// already present.
func (d *DedupSet[A]) Insert(a A) bool {
	h := a.Hash()
	for _, b := range d.buckets[h] {
		if b.Equal(a) {
			return false
		}
	}
	d.buckets[h] = append(d.buckets[h], a)
	d.size++
	return true
}

// Len returns the number of artifacts in the set.
func (d *DedupSet[A]) Len() int {
	return d.size
}
