package orbit

import (
	"sync"

	"github.com/studentorbit/toastkit/pkg/cache"
)

// Favorites remembers favorite schools per session. Sessions beyond the
// capacity are forgotten least recently used first.
type Favorites struct {
	sessions *cache.LRUCache[string, *favoriteSet]
}

type favoriteSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewFavorites creates a store holding at most maxSessions sessions.
func NewFavorites(maxSessions int) *Favorites {
	return &Favorites{sessions: cache.NewLRUCache[string, *favoriteSet](maxSessions)}
}

func (f *Favorites) set(sessionID string) *favoriteSet {
	set, _ := f.sessions.GetOrCreate(sessionID, func() *favoriteSet {
		return &favoriteSet{ids: make(map[string]struct{})}
	})
	return set
}

// Toggle flips the favorite flag of schoolID and reports the new value.
func (f *Favorites) Toggle(sessionID, schoolID string) bool {
	set := f.set(sessionID)
	set.mu.Lock()
	defer set.mu.Unlock()

	if _, ok := set.ids[schoolID]; ok {
		delete(set.ids, schoolID)
		return false
	}
	set.ids[schoolID] = struct{}{}
	return true
}

// Set stores the favorite flag of schoolID.
func (f *Favorites) Set(sessionID, schoolID string, favorite bool) {
	set := f.set(sessionID)
	set.mu.Lock()
	defer set.mu.Unlock()

	if favorite {
		set.ids[schoolID] = struct{}{}
	} else {
		delete(set.ids, schoolID)
	}
}

// IsFavorite reports whether schoolID is a favorite of the session.
func (f *Favorites) IsFavorite(sessionID, schoolID string) bool {
	set, ok := f.sessions.Peek(sessionID)
	if !ok {
		return false
	}

	set.mu.Lock()
	defer set.mu.Unlock()
	_, fav := set.ids[schoolID]
	return fav
}
