package tracker

// TrackedSet is an insertion-ordered collection of executable paths the
// user has opted in to tracking. Membership is exact path match and the
// set never holds duplicates.
type TrackedSet struct {
	order []string
	index map[string]struct{}
}

// NewTrackedSet builds a set from the given paths, dropping duplicates
// while preserving first-seen order.
func NewTrackedSet(paths []string) *TrackedSet {
	set := &TrackedSet{index: make(map[string]struct{}, len(paths))}
	for _, path := range paths {
		set.Add(path)
	}
	return set
}

// Add inserts the path if absent. A duplicate leaves the set unchanged.
func (set *TrackedSet) Add(path string) AddResult {
	if _, ok := set.index[path]; ok {
		return AlreadyPresent
	}
	set.index[path] = struct{}{}
	set.order = append(set.order, path)
	return Added
}

// Remove deletes the path if present.
func (set *TrackedSet) Remove(path string) RemoveResult {
	if _, ok := set.index[path]; !ok {
		return NotPresent
	}
	delete(set.index, path)
	for i, existing := range set.order {
		if existing == path {
			set.order = append(set.order[:i], set.order[i+1:]...)
			break
		}
	}
	return Removed
}

// Contains reports whether the path is tracked.
func (set *TrackedSet) Contains(path string) bool {
	_, ok := set.index[path]
	return ok
}

// List returns the tracked paths in insertion order.
func (set *TrackedSet) List() []string {
	return append([]string(nil), set.order...)
}

// Len returns the number of tracked paths.
func (set *TrackedSet) Len() int {
	return len(set.order)
}
