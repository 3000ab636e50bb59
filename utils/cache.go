package utils

import (
	"sync"

	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

// Cache is a concurrency safe key/value store used to memoize expensive derivations.
type Cache[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Set(key K, value V)
	Delete(key K)
	Clear()
}

// LRUCache keeps at most size entries, evicting the least recently used.
type LRUCache[K comparable, V any] struct {
	lock   sync.Mutex
	size   int
	values *lru.LRU[K, V]
}

func NewLRUCache[K comparable, V any](size int) *LRUCache[K, V] {
	return &LRUCache[K, V]{
		size:   size,
		values: lru.New[K, V](size),
	}
}

func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if v := c.values.Get(key); v != nil {
		return *v, true
	}
	return value, false
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Set(key, value)
}

func (c *LRUCache[K, V]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Remove(key)
}

func (c *LRUCache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values = lru.New[K, V](c.size)
}

// MapCache grows without bound. preallocate sizes the initial table.
type MapCache[K comparable, V any] struct {
	lock   sync.RWMutex
	values *swiss.Map[K, V]
}

func NewMapCache[K comparable, V any](preallocate uint32) *MapCache[K, V] {
	return &MapCache[K, V]{
		values: swiss.NewMap[K, V](preallocate),
	}
}

func (c *MapCache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.values.Get(key)
}

func (c *MapCache[K, V]) Set(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Put(key, value)
}

func (c *MapCache[K, V]) Delete(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Delete(key)
}

func (c *MapCache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Clear()
}

// Count returns the number of stored entries.
func (c *MapCache[K, V]) Count() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.values.Count()
}

// NilCache stores nothing.
type NilCache[K comparable, V any] struct{}

func NewNilCache[K comparable, V any]() NilCache[K, V] {
	return NilCache[K, V]{}
}

func (NilCache[K, V]) Get(K) (value V, ok bool) {
	return value, false
}

func (NilCache[K, V]) Set(K, V) {}

func (NilCache[K, V]) Delete(K) {}

func (NilCache[K, V]) Clear() {}
