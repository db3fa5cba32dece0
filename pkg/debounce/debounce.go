// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debounce

import (
	"sync"
	"time"

	"github.com/go-arcade/console/pkg/safe"
)

// DefaultWait is the coalescing window used when none is configured.
const DefaultWait = 200 * time.Millisecond

// Debouncer holds at most one pending call. Trigger replaces the pending
// call and restarts the window; the call runs once the window elapses with
// no further Trigger.
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	timer   *time.Timer
	pending func()
	seq     uint64
}

// Option Define Debouncer option type.
type Option func(*Debouncer)

// WithWait sets the coalescing window, default is DefaultWait.
func WithWait(d time.Duration) Option {
	return func(db *Debouncer) {
		if d <= 0 {
			return
		}
		db.wait = d
	}
}

func New(options ...Option) *Debouncer {
	db := &Debouncer{wait: DefaultWait}
	for _, op := range options {
		op(db)
	}
	return db
}

// Wait returns the configured window.
func (db *Debouncer) Wait() time.Duration {
	return db.wait
}

// Trigger schedules f, superseding any call that has not run yet.
func (db *Debouncer) Trigger(f func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.timer != nil {
		db.timer.Stop()
	}
	db.seq++
	seq := db.seq
	db.pending = f
	db.timer = time.AfterFunc(db.wait, func() {
		db.fire(seq)
	})
}

// Flush runs the pending call synchronously, if any. It returns true when
// a call was run.
func (db *Debouncer) Flush() bool {
	db.mu.Lock()
	f := db.take()
	db.mu.Unlock()

	if f == nil {
		return false
	}
	safe.Do(f)
	return true
}

// Cancel drops the pending call without running it.
func (db *Debouncer) Cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.take()
}

// Pending reports whether a call is waiting to run.
func (db *Debouncer) Pending() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pending != nil
}

func (db *Debouncer) fire(seq uint64) {
	db.mu.Lock()
	// superseded by a later Trigger, or already flushed
	if seq != db.seq || db.pending == nil {
		db.mu.Unlock()
		return
	}
	f := db.take()
	db.mu.Unlock()

	safe.Do(f)
}

// take must be called with mu held.
func (db *Debouncer) take() func() {
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
	f := db.pending
	db.pending = nil
	return f
}
