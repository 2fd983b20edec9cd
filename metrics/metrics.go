// Copyright 2025 Google LLC
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

// Package metrics provides a library to record run metrics.
package metrics

import "sync"

// Bool implements a Bool-type metric.
type Bool struct {
	name  string
	mu    sync.Mutex
	value bool
}

// NewBool returns a Bool metric.
func NewBool(name string) *Bool {
	return &Bool{name: name}
}

// Name returns the metric name.
func (b *Bool) Name() string { return b.name }

// Set sets the metric to a new bool value.
func (b *Bool) Set(value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
}

// Get returns the current value.
func (b *Bool) Get() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Counter implements a monotonically increasing Int-type metric.
type Counter struct {
	name  string
	mu    sync.Mutex
	value int64
}

// NewCounter returns a Counter metric.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Increment adds to the current value.
func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
}

// Get returns the current value.
func (c *Counter) Get() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) set(v int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}

// String implements a String-type metric.
type String struct {
	name  string
	mu    sync.Mutex
	value string
}

// NewString returns a String metric.
func NewString(name string) *String {
	return &String{name: name}
}

// Name returns the metric name.
func (s *String) Name() string { return s.name }

// Set sets the metric to a new string value.
func (s *String) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// Get returns the current value.
func (s *String) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
