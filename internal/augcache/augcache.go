// Package augcache keeps the highlight and annotation descriptors attached
// to barcodes while they are tracked across frames.
//
// Augmentations are keyed by barcode identity (barcode.UniqueHash), not by
// the tracker's per-session id, so a code that leaves the frame and comes
// back within the deletion delay finds its augmentations again.
package augcache

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/MeKo-Tech/scandefaults/internal/barcode"
)

const (
	// DefaultDeletionDelay is how long augmentations outlive their barcode.
	DefaultDeletionDelay = 2 * time.Second
	// DefaultCapacity bounds the number of identities held at once.
	DefaultCapacity = 1024
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("augcache: closed")

// Descriptor is an opaque highlight or annotation description.
type Descriptor map[string]any

// TrackedBarcode is a barcode together with the tracker's id for it.
type TrackedBarcode struct {
	ID      int             `json:"id"`
	Barcode barcode.Barcode `json:"barcode"`
}

// Session is one frame's worth of tracking changes.
type Session struct {
	Added   []TrackedBarcode `json:"added"`
	Removed []int            `json:"removed"`
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Tracked   int
	Entries   int
	Pending   int
	Evictions uint64
}

type entry struct {
	highlight  Descriptor
	annotation Descriptor
}

// Cache maps barcode identities to their augmentations.
type Cache struct {
	mu        sync.Mutex
	delay     time.Duration
	logger    *slog.Logger
	entries   *lru.Cache
	tracked   map[int]string
	pending   map[string]*time.Timer
	evictions uint64
	closed    bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithDeletionDelay sets how long augmentations survive their barcode.
// Zero deletes them immediately.
func WithDeletionDelay(d time.Duration) Option {
	return func(c *Cache) {
		if d >= 0 {
			c.delay = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a cache holding at most capacity identities.
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	c := &Cache{
		delay:   DefaultDeletionDelay,
		logger:  slog.Default(),
		entries: entries,
		tracked: make(map[int]string),
		pending: make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Update applies a session and returns the identities of the added
// barcodes in order.
func (c *Cache) Update(s Session) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	ids := make([]string, 0, len(s.Added))
	for _, tb := range s.Added {
		identity := barcode.UniqueHash(tb.Barcode)
		if old, ok := c.tracked[tb.ID]; ok && old != identity {
			c.release(old, tb.ID)
		}
		c.tracked[tb.ID] = identity
		if t, ok := c.pending[identity]; ok {
			t.Stop()
			delete(c.pending, identity)
			c.logger.Debug("barcode returned, deletion cancelled", "identity", identity)
		}
		ids = append(ids, identity)
	}

	for _, id := range s.Removed {
		identity, ok := c.tracked[id]
		if !ok {
			continue
		}
		c.release(identity, id)
	}
	return ids, nil
}

// release drops tracker id and schedules deletion once no id refers to
// identity any more. Callers hold c.mu.
func (c *Cache) release(identity string, id int) {
	delete(c.tracked, id)
	for _, other := range c.tracked {
		if other == identity {
			return
		}
	}
	if _, ok := c.pending[identity]; ok {
		return
	}
	if c.delay == 0 {
		c.entries.Remove(identity)
		return
	}

	var t *time.Timer
	t = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.pending[identity] != t {
			return
		}
		delete(c.pending, identity)
		c.entries.Remove(identity)
		c.logger.Debug("augmentations expired", "identity", identity)
	})
	c.pending[identity] = t
}

// Identity returns the identity currently bound to a tracker id.
func (c *Cache) Identity(id int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	identity, ok := c.tracked[id]
	return identity, ok
}

func (c *Cache) set(identity string, fn func(*entry)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	var e *entry
	if v, ok := c.entries.Get(identity); ok {
		e = v.(*entry)
	} else {
		e = &entry{}
		if c.entries.Add(identity, e) {
			c.evictions++
		}
	}
	fn(e)
	return nil
}

func (c *Cache) get(identity string, pick func(*entry) Descriptor) (Descriptor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries.Get(identity)
	if !ok {
		return nil, false
	}
	d := pick(v.(*entry))
	return d, d != nil
}

// SetHighlight attaches a highlight descriptor to an identity.
func (c *Cache) SetHighlight(identity string, d Descriptor) error {
	return c.set(identity, func(e *entry) { e.highlight = d })
}

func (c *Cache) Highlight(identity string) (Descriptor, bool) {
	return c.get(identity, func(e *entry) Descriptor { return e.highlight })
}

// SetAnnotation attaches an annotation descriptor to an identity.
func (c *Cache) SetAnnotation(identity string, d Descriptor) error {
	return c.set(identity, func(e *entry) { e.annotation = d })
}

func (c *Cache) Annotation(identity string) (Descriptor, bool) {
	return c.get(identity, func(e *entry) Descriptor { return e.annotation })
}

// Clear forgets every tracked barcode and augmentation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopPending()
	c.entries.Purge()
	clear(c.tracked)
}

// Close clears the cache and cancels all pending deletions. Later updates
// and writes return ErrClosed.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.stopPending()
	c.entries.Purge()
	clear(c.tracked)
	return nil
}

func (c *Cache) stopPending() {
	for identity, t := range c.pending {
		t.Stop()
		delete(c.pending, identity)
	}
}

// Stats reports the current sizes of the cache.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Tracked:   len(c.tracked),
		Entries:   c.entries.Len(),
		Pending:   len(c.pending),
		Evictions: c.evictions,
	}
}
