package orbit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studentorbit/toastkit/modules/orbit"
)

func TestFavorites(t *testing.T) {
	f := orbit.NewFavorites(2)

	assert.False(t, f.IsFavorite("s1", "mit"))
	assert.True(t, f.Toggle("s1", "mit"))
	assert.True(t, f.IsFavorite("s1", "mit"))
	assert.False(t, f.IsFavorite("s2", "mit"))
	assert.False(t, f.Toggle("s1", "mit"))
	assert.False(t, f.IsFavorite("s1", "mit"))

	t.Run("least recently used session is forgotten", func(t *testing.T) {
		f := orbit.NewFavorites(2)
		f.Toggle("s1", "mit")
		f.Toggle("s2", "mit")
		f.Toggle("s3", "mit")

		assert.False(t, f.IsFavorite("s1", "mit"))
		assert.True(t, f.IsFavorite("s2", "mit"))
		assert.True(t, f.IsFavorite("s3", "mit"))
	})

	t.Run("concurrent toggles", func(t *testing.T) {
		f := orbit.NewFavorites(10)
		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f.Toggle("s1", "yale")
			}()
		}
		wg.Wait()
		assert.False(t, f.IsFavorite("s1", "yale"), "an even number of toggles leaves it off")
	})
}

func TestCatalog(t *testing.T) {
	c := orbit.NewCatalog(
		orbit.School{ID: "a", Name: "Alpha"},
		orbit.School{ID: "b", Name: "Beta"},
	)

	s, ok := c.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "Beta", s.Name)

	_, ok = c.Lookup("z")
	assert.False(t, ok)

	all := c.All()
	assert.Equal(t, []string{"a", "b"}, []string{all[0].ID, all[1].ID})
	all[0].Name = "changed"
	s, _ = c.Lookup("a")
	assert.Equal(t, "Alpha", s.Name)

	assert.NotEmpty(t, orbit.DefaultCatalog().All())
}
