package engine

import (
	"sync"

	"github.com/nuesadev/scholarengine/internal/models"
	"github.com/nuesadev/scholarengine/internal/store"
)

// center is the in-memory notification view the UI reads from. It is a
// derived copy of the persisted notification log: every mutation
// round-trips through the store first and is then mirrored here.
type center struct {
	mu     sync.RWMutex
	list   []models.Notification
	loaded bool
}

func (c *center) replace(list []models.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append([]models.Notification(nil), list...)
	c.loaded = true
}

func (c *center) isLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *center) prepend(n models.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append([]models.Notification{n}, c.list...)
	if len(c.list) > store.NotificationCap {
		c.list = c.list[:store.NotificationCap]
	}
}

func (c *center) markRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.list {
		if c.list[i].ID == id {
			c.list[i].Read = true
			return
		}
	}
}

func (c *center) markAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.list {
		c.list[i].Read = true
	}
}

func (c *center) snapshot() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Notification(nil), c.list...)
}

func (c *center) unread() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, n := range c.list {
		if !n.Read {
			count++
		}
	}
	return count
}

func (c *center) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.loaded = true
}
