package bdata

import (
	"sort"
	"sync"
)

// BrandNameStore maps brand names to display labels.
type BrandNameStore interface {
	Put(brand, name string)
	Replace(source string, labels map[string]string)
	DisplayName(brand string) string
	Len() int
}

// MemoryStore keeps labels per source (a mapping file path, or "" for Put).
// Sources are merged in path order, a later source wins on the same brand.
type MemoryStore struct {
	mu      sync.RWMutex
	sources map[string]map[string]string
	dataMap map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sources: make(map[string]map[string]string, 4), dataMap: make(map[string]string, 16)}
}

// Put sets a label outside of any mapping file. It survives file reloads;
// a mapping file naming the same brand takes precedence.
func (m *MemoryStore) Put(brand, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	labels, ok := m.sources[""]
	if !ok {
		labels = make(map[string]string)
		m.sources[""] = labels
	}
	labels[brand] = name
	m.rebuild()
}

// Replace swaps every label loaded from source for labels, so a brand
// removed from a rewritten file loses its label.
func (m *MemoryStore) Replace(source string, labels map[string]string) {
	copied := make(map[string]string, len(labels))
	for k, v := range labels {
		copied[k] = v
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[source] = copied
	m.rebuild()
}

func (m *MemoryStore) rebuild() {
	names := make([]string, 0, len(m.sources))
	for source := range m.sources {
		names = append(names, source)
	}
	sort.Strings(names)
	dataMap := make(map[string]string, len(m.dataMap))
	for _, source := range names {
		for k, v := range m.sources[source] {
			dataMap[k] = v
		}
	}
	m.dataMap = dataMap
}

// DisplayName falls back to brand itself when no label is mapped.
func (m *MemoryStore) DisplayName(brand string) string {
	if brand == "" {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if name, ok := m.dataMap[brand]; ok {
		return name
	}
	return brand
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dataMap)
}
