// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"

	"github.com/MKhiriev/go-table-sync/models"
)

type memoryResourceCache struct {
	mu        sync.RWMutex
	resources map[string]models.TableResource
}

// NewMemoryResourceCache returns a process-local [ResourceCache].
func NewMemoryResourceCache() ResourceCache {
	return &memoryResourceCache{resources: make(map[string]models.TableResource)}
}

func (c *memoryResourceCache) Get(tableID string) (models.TableResource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.resources[tableID]
	return r, ok
}

func (c *memoryResourceCache) Put(resource models.TableResource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources[resource.TableID] = resource
}

func (c *memoryResourceCache) Invalidate(tableID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.resources, tableID)
}
