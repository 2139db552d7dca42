package state

// Reachable returns the set of commit hashes reachable from start by following
// every parent link. A hash already seen is never expanded again, so the walk
// terminates even if the parent links were to form a cycle.
func (r *Repository) Reachable(start string) map[string]struct{} {
	seen := make(map[string]struct{})
	if start == "" {
		return seen
	}

	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, ok := seen[current]; ok {
			continue
		}
		c, ok := r.commitIndex[current]
		if !ok {
			continue
		}
		seen[current] = struct{}{}
		queue = append(queue, c.Parents...)
	}
	return seen
}

// History returns the commits reachable from start that were recorded on
// branch, newest first.
func (r *Repository) History(start, branch string) []Commit {
	reachable := r.Reachable(start)
	var out []Commit
	for i := len(r.commits) - 1; i >= 0; i-- {
		c := r.commits[i]
		if _, ok := reachable[c.Hash]; !ok || c.Branch != branch {
			continue
		}
		out = append(out, c.clone())
	}
	return out
}

// IsAncestor reports whether ancestor is reachable from descendant.
// Every commit is its own ancestor; "" is an ancestor of everything.
func (r *Repository) IsAncestor(ancestor, descendant string) bool {
	if ancestor == "" {
		return true
	}
	_, ok := r.Reachable(descendant)[ancestor]
	return ok
}

// AheadCount returns how many commits are reachable from head but not from base.
func (r *Repository) AheadCount(head, base string) int {
	baseSet := r.Reachable(base)
	n := 0
	for hash := range r.Reachable(head) {
		if _, ok := baseSet[hash]; !ok {
			n++
		}
	}
	return n
}
