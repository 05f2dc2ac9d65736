package gateway

import "sync"

type cacheEntry struct {
	result     ServiceResult
	documentID string
}

// Cache memoizes service results by request identity. Writes are
// last-writer-wins; concurrent callers racing on the same identity may
// each compute the result once, which is acceptable since results for a
// given identity are equivalent.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

func (c *Cache) Get(key string) (ServiceResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	return entry.result, ok
}

func (c *Cache) Put(key string, result ServiceResult, documentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{result: result, documentID: documentID}
}

// InvalidateDocument drops every cached result derived from the given
// document. Called when a document is replaced or deleted.
func (c *Cache) InvalidateDocument(documentID string) {
	if documentID == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.documentID == documentID {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
