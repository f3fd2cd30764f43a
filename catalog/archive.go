// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Archive supplies tracks by index. Track returns ErrTrackOutOfRange for an
// index outside [0, Count()).
type Archive interface {
	Count() int
	Track(n int) (View, error)
}

// MemArchive serves tracks held in memory.
type MemArchive struct {
	names  []string
	tracks [][]byte
}

func NewMemArchive() *MemArchive {
	return &MemArchive{}
}

// Add appends a track and returns its index.
func (m *MemArchive) Add(name string, data []byte) int {
	m.names = append(m.names, name)
	m.tracks = append(m.tracks, data)
	return len(m.tracks) - 1
}

func (m *MemArchive) Count() int { return len(m.tracks) }

func (m *MemArchive) Track(n int) (View, error) {
	if n < 0 || n >= len(m.tracks) {
		return View{}, fmt.Errorf("track %d of %d: %w", n, len(m.tracks), ErrTrackOutOfRange)
	}
	return NewView(m.names[n], m.tracks[n]), nil
}

// DirArchive serves the files of one directory whose extension matches, in
// lexical order. Files are read on first access and cached.
type DirArchive struct {
	paths []string

	mtx   *sync.Mutex
	cache map[int][]byte
}

// OpenDir lists dir. With no extensions every regular file is a track.
// Extensions are matched case insensitively, with or without the dot.
func OpenDir(dir string, exts ...string) (*DirArchive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), "."))
		if len(want) > 0 && !want[ext] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyArchive)
	}
	slices.Sort(paths)

	return &DirArchive{
		paths: paths,
		mtx:   &sync.Mutex{},
		cache: make(map[int][]byte),
	}, nil
}

func (d *DirArchive) Count() int { return len(d.paths) }

// Path of track n, or "" when out of range.
func (d *DirArchive) Path(n int) string {
	if n < 0 || n >= len(d.paths) {
		return ""
	}
	return d.paths[n]
}

func (d *DirArchive) Track(n int) (View, error) {
	if n < 0 || n >= len(d.paths) {
		return View{}, fmt.Errorf("track %d of %d: %w", n, len(d.paths), ErrTrackOutOfRange)
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()

	data, ok := d.cache[n]
	if !ok {
		var err error
		data, err = os.ReadFile(d.paths[n])
		if err != nil {
			return View{}, fmt.Errorf("%w", err)
		}
		d.cache[n] = data
	}

	return NewView(filepath.Base(d.paths[n]), data), nil
}
