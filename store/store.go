// seehuhn.de/go/glazeblend - a ceramic glaze blend calculator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store keeps blend settings between runs, in a TOML file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"
)

// Store is a key-value store backed by a TOML file. Every key is stored
// as a top-level table of the document.
//
// A Store is safe for concurrent use within one process.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]any
}

// Open reads the store at path. A missing file gives an empty store;
// the file is created by the first call to [Store.Put].
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]any),
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(body, &s.data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Path returns the file name of the store.
func (s *Store) Path() string {
	return s.path
}

// Get decodes the value stored under key into v, which must be a pointer
// to a struct or a map. The result reports whether the key was present.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	val, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	table, ok := val.(map[string]any)
	if !ok {
		return true, fmt.Errorf("%s: %q is not a table", s.path, key)
	}
	body, err := toml.Marshal(table)
	if err != nil {
		return true, err
	}
	return true, toml.Unmarshal(body, v)
}

// Put stores v under key and rewrites the file. The value must encode
// as a TOML table.
//
// The new file is written next to the old one and then renamed, so that
// the store is never left half-written.
func (s *Store) Put(key string, v any) error {
	body, err := toml.Marshal(v)
	if err != nil {
		return err
	}
	var table map[string]any
	if err := toml.Unmarshal(body, &table); err != nil {
		return fmt.Errorf("%q does not encode as a table: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = table
	body, err = toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return writeFile(s.path, body)
}

func writeFile(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, body, 0o644)
}
