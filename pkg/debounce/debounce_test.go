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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls, last atomic.Int32
	db := New(WithWait(20 * time.Millisecond))

	for i := 1; i <= 5; i++ {
		n := int32(i)
		db.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load(), "the latest call replaces the pending one")
}

func TestDebouncer_Flush(t *testing.T) {
	var calls atomic.Int32
	db := New(WithWait(time.Hour))

	assert.False(t, db.Flush())

	db.Trigger(func() { calls.Add(1) })
	assert.True(t, db.Pending())
	assert.True(t, db.Flush())
	assert.False(t, db.Pending())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, db.Flush())
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls atomic.Int32
	db := New(WithWait(10 * time.Millisecond))

	db.Trigger(func() { calls.Add(1) })
	db.Cancel()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_PanicIsContained(t *testing.T) {
	db := New(WithWait(time.Hour))
	db.Trigger(func() { panic("boom") })
	assert.NotPanics(t, func() { db.Flush() })
}

func TestWithWait_IgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultWait, New(WithWait(0)).Wait())
	assert.Equal(t, DefaultWait, New(WithWait(-time.Second)).Wait())
	assert.Equal(t, time.Second, New(WithWait(time.Second)).Wait())
}
