package dsu

// NewRelations returns a Relations for people 0..n-1 with no known facts.
func NewRelations(n int) *Relations {
	if n < 0 {
		n = 0
	}

	return &Relations{n: n, sets: New(2 * n)}
}

// enemy returns the shadow element standing for x's enemies.
func (r *Relations) enemy(x int) int { return x + r.n }

// SetFriends records that a and b are friends.
func (r *Relations) SetFriends(a, b int) error {
	if r.AreEnemies(a, b) {
		return ErrContradiction
	}
	r.sets.Union(a, b)
	r.sets.Union(r.enemy(a), r.enemy(b))

	return nil
}

// SetEnemies records that a and b are enemies.
func (r *Relations) SetEnemies(a, b int) error {
	if r.AreFriends(a, b) {
		return ErrContradiction
	}
	r.sets.Union(a, r.enemy(b))
	r.sets.Union(b, r.enemy(a))

	return nil
}

// AreFriends reports whether a and b are known friends. Everyone is their own
// friend.
func (r *Relations) AreFriends(a, b int) bool {
	return r.sets.Connected(a, b)
}

// AreEnemies reports whether a and b are known enemies.
func (r *Relations) AreEnemies(a, b int) bool {
	return r.sets.Connected(a, r.enemy(b))
}
