package aes128

import (
	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
)

type contextCacheKey struct {
	id   types.Hash
	mode Mode
}

// ContextCache reuses contexts for keys seen before, skipping key expansion.
// The backend is selected on every lookup and contexts are cached per key and mode, so a
// per-context policy still switches backends as the capability probe changes.
// Evicted contexts are not closed, callers may still hold them. A context closed by any
// holder is dropped and rebuilt on the next lookup.
type ContextCache struct {
	config   Config
	contexts utils.Cache[contextCacheKey, *Context]
}

// NewContextCache sized by cfg.CacheSize, see Config
func NewContextCache(cfg Config) *ContextCache {
	c := &ContextCache{
		config: cfg,
	}
	switch {
	case cfg.CacheSize > 0:
		c.contexts = utils.NewLRUCache[contextCacheKey, *Context](cfg.CacheSize)
	case cfg.CacheSize == 0:
		c.contexts = utils.NewMapCache[contextCacheKey, *Context](64)
	default:
		c.contexts = utils.NewNilCache[contextCacheKey, *Context]()
	}
	return c
}

func (c *ContextCache) Get(key []byte) (*Context, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}
	if len(key) != types.KeySize {
		return nil, KeySizeError(len(key))
	}
	k := types.Key(key)
	defer k.Clear()
	return c.GetKey(&k)
}

func (c *ContextCache) GetKey(key *types.Key) (*Context, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}

	b, err := c.config.selectBackend()
	if err != nil {
		return nil, err
	}

	k := contextCacheKey{id: KeyID(key), mode: b.mode()}
	if ctx, ok := c.contexts.Get(k); ok {
		if ctx.Mode() != ModeUndetermined {
			return ctx, nil
		}
		// closed by a holder
		c.contexts.Delete(k)
	}

	ctx, err := newContext(key, b)
	if err != nil {
		return nil, err
	}
	c.contexts.Set(k, ctx)
	return ctx, nil
}

// Forget drops the cached contexts for key, if any
func (c *ContextCache) Forget(key *types.Key) {
	id := KeyID(key)
	c.contexts.Delete(contextCacheKey{id: id, mode: ModeSoftware})
	c.contexts.Delete(contextCacheKey{id: id, mode: ModeHardware})
}

// Clear drops every cached context
func (c *ContextCache) Clear() {
	c.contexts.Clear()
}
