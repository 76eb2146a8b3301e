// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry keeps the live workflows in memory, indexed by their ids.
// Workflows are not persisted, so they are lost when the process ends.
//
// Abandoned workflows (e.g., after a page reload) are never discarded
// by their clients, so a workflow which is not accessed for the idle
// timeout expires. When the registry is full, the least recently used
// workflow is evicted in favor of the new one.
type Registry struct {
	mu        sync.Mutex
	workflows map[uuid.UUID]*Workflow
	limit     int
	idle      time.Duration
	now       func() time.Time
}

// NewRegistry instantiates an empty Registry which keeps at most limit
// workflows, each one for at most idle after its last access.
// A non-positive limit or idle means no limit or no expiry.
func NewRegistry(limit int, idle time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		workflows: make(map[uuid.UUID]*Workflow),
		limit:     limit,
		idle:      idle,
		now:       now,
	}
}

// Add registers wf, returning the workflows which were discarded in
// order to make room for it.
func (r *Registry) Add(wf *Workflow) (evicted []*Workflow) {
	r.mu.Lock()
	now := r.now()
	evicted = r.sweep(now)
	if r.limit > 0 && len(r.workflows) >= r.limit {
		var lru *Workflow
		for _, w := range r.workflows {
			if lru == nil || w.lastUsed().Before(lru.lastUsed()) {
				lru = w
			}
		}
		delete(r.workflows, lru.ID)
		evicted = append(evicted, lru)
	}
	wf.touch(now)
	r.workflows[wf.ID] = wf
	r.mu.Unlock()
	for _, w := range evicted {
		w.Discard()
	}
	return evicted
}

// sweep drops the expired workflows. The caller must hold r.mu.
func (r *Registry) sweep(now time.Time) (expired []*Workflow) {
	if r.idle <= 0 {
		return nil
	}
	for id, w := range r.workflows {
		if now.Sub(w.lastUsed()) > r.idle {
			delete(r.workflows, id)
			expired = append(expired, w)
		}
	}
	return expired
}

// Get finds the id workflow and records its access. An expired
// workflow is discarded and reported as missing.
func (r *Registry) Get(id uuid.UUID) (*Workflow, bool) {
	r.mu.Lock()
	now := r.now()
	wf, ok := r.workflows[id]
	if ok && r.idle > 0 && now.Sub(wf.lastUsed()) > r.idle {
		delete(r.workflows, id)
		r.mu.Unlock()
		wf.Discard()
		return nil, false
	}
	if ok {
		wf.touch(now)
	}
	r.mu.Unlock()
	return wf, ok
}

// Remove unregisters and discards the id workflow, if it exists.
func (r *Registry) Remove(id uuid.UUID) (*Workflow, bool) {
	r.mu.Lock()
	wf, ok := r.workflows[id]
	delete(r.workflows, id)
	r.mu.Unlock()
	if ok {
		wf.Discard()
	}
	return wf, ok
}

// Len returns the number of live workflows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workflows)
}
