package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackedSetAddDuplicate(t *testing.T) {
	set := NewTrackedSet(nil)

	assert.Equal(t, Added, set.Add(`C:\Work\app.exe`))
	assert.Equal(t, AlreadyPresent, set.Add(`C:\Work\app.exe`))
	assert.Equal(t, []string{`C:\Work\app.exe`}, set.List())
}

func TestTrackedSetRemoveAbsent(t *testing.T) {
	set := NewTrackedSet([]string{"/usr/bin/code"})

	assert.Equal(t, NotPresent, set.Remove("/usr/bin/vim"))
	assert.Equal(t, []string{"/usr/bin/code"}, set.List())

	assert.Equal(t, Removed, set.Remove("/usr/bin/code"))
	assert.Equal(t, NotPresent, set.Remove("/usr/bin/code"))
	assert.Zero(t, set.Len())
}

func TestTrackedSetPreservesInsertionOrder(t *testing.T) {
	set := NewTrackedSet(nil)
	paths := []string{"/b", "/a", "/c"}
	for _, path := range paths {
		set.Add(path)
	}

	assert.Equal(t, paths, set.List())

	set.Remove("/a")
	assert.Equal(t, []string{"/b", "/c"}, set.List())

	set.Add("/a")
	assert.Equal(t, []string{"/b", "/c", "/a"}, set.List())
}

func TestNewTrackedSetDropsDuplicates(t *testing.T) {
	set := NewTrackedSet([]string{"/a", "/b", "/a"})

	assert.Equal(t, []string{"/a", "/b"}, set.List())
	assert.True(t, set.Contains("/a"))
	assert.False(t, set.Contains("/c"))
}

func TestTrackedSetListIsCopy(t *testing.T) {
	set := NewTrackedSet([]string{"/a", "/b"})

	listed := set.List()
	listed[0] = "/mutated"

	assert.Equal(t, []string{"/a", "/b"}, set.List())
}
