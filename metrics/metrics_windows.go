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

//go:build windows
// +build windows

package metrics

import (
	"fmt"

	"github.com/google/wutoggle/wulib"
	"golang.org/x/sys/windows/registry"
)

// Metric is a value that can be persisted to the registry.
type Metric interface {
	Name() string
	read(k registry.Key) error
	write(k registry.Key) error
}

// Store persists metrics under a registry key.
type Store struct {
	Path string
}

// NewStore returns a Store under the wutoggle settings key.
func NewStore() *Store {
	return &Store{Path: wulib.RegPath + wulib.MetricRoot}
}

// Load reads each metric. Metrics missing from the registry keep their value.
func (s *Store) Load(ms ...Metric) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, s.Path, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return nil
	}
	if err != nil {
		return err
	}
	defer k.Close()
	for _, m := range ms {
		if err := m.read(k); err != nil && err != registry.ErrNotExist {
			return fmt.Errorf("reading metric %s: %w", m.Name(), err)
		}
	}
	return nil
}

// Save writes each metric, creating the key when needed.
func (s *Store) Save(ms ...Metric) error {
	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, s.Path, registry.ALL_ACCESS)
	if err != nil {
		return err
	}
	defer k.Close()
	for _, m := range ms {
		if err := m.write(k); err != nil {
			return fmt.Errorf("writing metric %s: %w", m.Name(), err)
		}
	}
	return nil
}

func (b *Bool) read(k registry.Key) error {
	v, _, err := k.GetIntegerValue(b.name)
	if err != nil {
		return err
	}
	b.Set(v != 0)
	return nil
}

func (b *Bool) write(k registry.Key) error {
	var v uint32
	if b.Get() {
		v = 1
	}
	return k.SetDWordValue(b.name, v)
}

func (c *Counter) read(k registry.Key) error {
	v, _, err := k.GetIntegerValue(c.name)
	if err != nil {
		return err
	}
	c.set(int64(v))
	return nil
}

func (c *Counter) write(k registry.Key) error {
	return k.SetQWordValue(c.name, uint64(c.Get()))
}

func (s *String) read(k registry.Key) error {
	v, _, err := k.GetStringValue(s.name)
	if err != nil {
		return err
	}
	s.Set(v)
	return nil
}

func (s *String) write(k registry.Key) error {
	return k.SetStringValue(s.name, s.Get())
}
