package dsu

// NewKeyed returns an empty keyed DSU.
func NewKeyed[K comparable]() *Keyed[K] {
	return &Keyed[K]{
		index: make(map[K]int),
		sets:  New(0),
	}
}

// id returns the dense index of k, registering it when unseen.
func (k *Keyed[K]) id(key K) int {
	if i, ok := k.index[key]; ok {
		return i
	}
	i := k.sets.Add()
	k.index[key] = i
	k.keys = append(k.keys, key)

	return i
}

// Add registers key as a singleton if it is new.
func (k *Keyed[K]) Add(key K) { k.id(key) }

// Has reports whether key has been seen.
func (k *Keyed[K]) Has(key K) bool {
	_, ok := k.index[key]

	return ok
}

// Find returns the representative key of key's set.
func (k *Keyed[K]) Find(key K) K {
	return k.keys[k.sets.Find(k.id(key))]
}

// Union merges the sets of a and b and returns the size of the resulting set.
func (k *Keyed[K]) Union(a, b K) int {
	ia, ib := k.id(a), k.id(b)
	k.sets.Union(ia, ib)

	return k.sets.Size(ia)
}

// Connected reports whether a and b share a set. Unknown keys are never
// connected to anything but themselves.
func (k *Keyed[K]) Connected(a, b K) bool {
	ia, okA := k.index[a]
	ib, okB := k.index[b]
	if !okA || !okB {
		return okA == okB && a == b
	}

	return k.sets.Connected(ia, ib)
}

// Size returns the size of key's set (1 for an unseen key, which is registered).
func (k *Keyed[K]) Size(key K) int { return k.sets.Size(k.id(key)) }

// Count returns the number of sets.
func (k *Keyed[K]) Count() int { return k.sets.Count() }

// Len returns the number of registered keys.
func (k *Keyed[K]) Len() int { return len(k.keys) }
