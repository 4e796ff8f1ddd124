// Package exepath maintains the index of executables discovered on PATH.
package exepath

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Index is the set of absolute paths of files on the search path whose mode
// bits include at least one execute bit. It is built once and treated as
// read-only between rebuilds; lookups are safe from concurrent pipeline
// stages. A rebuild is triggered lazily after Invalidate, which either the
// REPL (refresh policy "command") or a filesystem watcher may call.
type Index struct {
	mu      sync.RWMutex
	dirs    []string
	paths   []string            // absolute paths in PATH order
	byStem  map[string][]string // file stem -> absolute paths in PATH order
	dirty   atomic.Bool
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// New builds an index from the given PATH value (the platform's list
// separator). An empty value yields an empty index.
func New(pathEnv string) *Index {
	idx := &Index{dirs: filepath.SplitList(pathEnv)}
	idx.rebuild()
	return idx
}

// FromEnv builds an index from the process's PATH environment variable.
func FromEnv() *Index {
	return New(os.Getenv("PATH"))
}

// Invalidate marks the index stale; the next lookup rebuilds it.
func (idx *Index) Invalidate() {
	idx.dirty.Store(true)
}

// Lookup returns the first path in PATH order whose file stem equals name.
func (idx *Index) Lookup(name string) (string, bool) {
	idx.refreshIfDirty()

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	paths := idx.byStem[name]
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// Paths returns every indexed absolute path in PATH order.
func (idx *Index) Paths() []string {
	idx.refreshIfDirty()

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, len(idx.paths))
	copy(out, idx.paths)
	return out
}

// Stems returns the sorted, de-duplicated file stems of every indexed
// executable. Used for command-name completion.
func (idx *Index) Stems() []string {
	idx.refreshIfDirty()

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	stems := make([]string, 0, len(idx.byStem))
	for stem := range idx.byStem {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}

func (idx *Index) refreshIfDirty() {
	if idx.dirty.CompareAndSwap(true, false) {
		idx.rebuild()
	}
}

func (idx *Index) rebuild() {
	paths, byStem := scan(idx.dirs)

	idx.mu.Lock()
	idx.paths = paths
	idx.byStem = byStem
	idx.mu.Unlock()
}

// scan enumerates every directory concurrently but merges the results in
// PATH order so that Lookup keeps first-match semantics.
func scan(dirs []string) ([]string, map[string][]string) {
	perDir := make([][]string, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			entries, err := os.ReadDir(dir)
			if err != nil {
				return nil // unreadable directories are skipped
			}
			var found []string
			for _, e := range entries {
				path := filepath.Join(dir, e.Name())
				// Stat, not the lstat the DirEntry carries, so symlinked
				// executables count by their target's bits.
				info, err := os.Stat(path)
				if err != nil || !executable(info) {
					continue
				}
				found = append(found, path)
			}
			perDir[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var paths []string
	byStem := make(map[string][]string)
	for _, found := range perDir {
		for _, p := range found {
			paths = append(paths, p)
			stem := Stem(p)
			byStem[stem] = append(byStem[stem], p)
		}
	}
	return paths, byStem
}

func executable(info fs.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// Stem returns the filename of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Watch starts a filesystem watcher over the PATH directories and marks the
// index stale whenever one of them changes. The rebuild itself happens on
// the next lookup, never in the watcher goroutine.
func (idx *Index) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for _, dir := range idx.dirs {
		// Missing or unwatchable directories are skipped, same as in scan.
		_ = w.Add(dir)
	}

	idx.watcher = w
	idx.done = make(chan struct{})
	go func() {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				idx.Invalidate()
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-idx.done:
				return
			}
		}
	}()
	return nil
}

// Close stops the watcher if one was started.
func (idx *Index) Close() error {
	if idx.watcher == nil {
		return nil
	}
	close(idx.done)
	return idx.watcher.Close()
}
