package models

import "strings"

// Store persists string lists by key. fyne.Preferences satisfies it.
type Store interface {
	StringList(key string) []string
	SetStringList(key string, value []string)
}

// RecentFiles is a bounded most-recent-first list of unique file paths
type RecentFiles struct {
	store    Store
	key      string
	capacity int
	paths    []string
}

// NewRecentFiles loads the list persisted under key, dropping blanks and
// duplicates and truncating to capacity
func NewRecentFiles(store Store, key string, capacity int) *RecentFiles {
	if capacity < 1 {
		capacity = 1
	}

	rf := &RecentFiles{
		store:    store,
		key:      key,
		capacity: capacity,
	}

	seen := make(map[string]bool)
	for _, path := range store.StringList(key) {
		if strings.TrimSpace(path) == "" || seen[path] {
			continue
		}
		seen[path] = true
		rf.paths = append(rf.paths, path)
		if len(rf.paths) == capacity {
			break
		}
	}

	return rf
}

// Add moves path to the front, inserting it if absent
func (rf *RecentFiles) Add(path string) {
	if path == "" {
		return
	}

	paths := make([]string, 0, rf.capacity)
	paths = append(paths, path)
	for _, existing := range rf.paths {
		if existing == path {
			continue
		}
		if len(paths) == rf.capacity {
			break
		}
		paths = append(paths, existing)
	}

	rf.paths = paths
	rf.persist()
}

// Remove deletes path and reports whether it was present.
func (rf *RecentFiles) Remove(path string) bool {
	for i, existing := range rf.paths {
		if existing == path {
			rf.paths = append(rf.paths[:i:i], rf.paths[i+1:]...)
			rf.persist()
			return true
		}
	}
	return false
}

func (rf *RecentFiles) Clear() {
	rf.paths = nil
	rf.persist()
}

// List returns a copy of the paths, most recent first
func (rf *RecentFiles) List() []string {
	out := make([]string, len(rf.paths))
	copy(out, rf.paths)
	return out
}

func (rf *RecentFiles) Contains(path string) bool {
	for _, existing := range rf.paths {
		if existing == path {
			return true
		}
	}
	return false
}

func (rf *RecentFiles) Len() int {
	return len(rf.paths)
}

func (rf *RecentFiles) persist() {
	rf.store.SetStringList(rf.key, rf.List())
}
