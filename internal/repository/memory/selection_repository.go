package memory

import (
	"time"

	"brigade-taxonomy-be/internal/constant"
	"brigade-taxonomy-be/internal/selection"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SelectionRepository keeps per-session selection state in memory only.
// Selections are never persisted; an idle session's state expires with the
// cache entry.
type SelectionRepository struct {
	cache *cache.Cache
}

func NewSelectionRepository() *SelectionRepository {
	// Default expiration of 24 hours, purge sweep every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SelectionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session's selection state, initializing an empty
// record per known taxonomy on first access.
func (r *SelectionRepository) GetOrCreate(sessionID uuid.UUID) *selection.State {
	key := sessionID.String()
	if x, found := r.cache.Get(key); found {
		// Refresh the TTL on every touch so active sessions survive.
		state := x.(*selection.State)
		r.cache.Set(key, state, cache.DefaultExpiration)
		return state
	}
	state := selection.NewState(constant.KnownTaxonomies)
	r.cache.Set(key, state, cache.DefaultExpiration)
	return state
}

func (r *SelectionRepository) Get(sessionID uuid.UUID) (*selection.State, bool) {
	if x, found := r.cache.Get(sessionID.String()); found {
		return x.(*selection.State), true
	}
	return nil, false
}

func (r *SelectionRepository) Delete(sessionID uuid.UUID) {
	r.cache.Delete(sessionID.String())
}
