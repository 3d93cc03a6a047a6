package tabular

import (
	"context"
	"fmt"
	"sync"
)

type memoryCollection struct {
	headers []string
	rows    [][]string
}

// MemoryStore is an in-memory Store implementation. It backs tests and
// ephemeral deployments. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (m *MemoryStore) EnsureCollections(_ context.Context, schemas []Schema) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range schemas {
		if _, ok := m.collections[s.Name]; !ok {
			headers := make([]string, len(s.Headers))
			copy(headers, s.Headers)
			m.collections[s.Name] = &memoryCollection{headers: headers}
		}
	}
	return nil
}

func (m *MemoryStore) collection(name string) (*memoryCollection, error) {
	c, ok := m.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return c, nil
}

func (m *MemoryStore) Append(_ context.Context, collection string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.collection(collection)
	if err != nil {
		return err
	}
	stored := make([]string, len(row))
	copy(stored, row)
	c.rows = append(c.rows, stored)
	return nil
}

func (m *MemoryStore) FindRowByKey(_ context.Context, collection string, keyCol int, value string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, err := m.collection(collection)
	if err != nil {
		return -1, err
	}
	return findInRows(c.rows, keyCol, value)
}

func (m *MemoryStore) ReadAll(_ context.Context, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, err := m.collection(collection)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(c.rows))
	for _, row := range c.rows {
		records = append(records, rowToRecord(c.headers, row))
	}
	return records, nil
}

func (m *MemoryStore) UpdateFields(_ context.Context, collection string, index int, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateLocked(collection, index, fields)
}

func (m *MemoryStore) UpdateByKey(_ context.Context, collection string, keyCol int, value string, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.collection(collection)
	if err != nil {
		return err
	}
	index, err := findInRows(c.rows, keyCol, value)
	if err != nil {
		return err
	}
	return m.updateLocked(collection, index, fields)
}

func (m *MemoryStore) updateLocked(collection string, index int, fields map[string]string) error {
	c, err := m.collection(collection)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.rows) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	row := c.rows[index]
	if len(row) < len(c.headers) {
		grown := make([]string, len(c.headers))
		copy(grown, row)
		row = grown
		c.rows[index] = row
	}
	for col, value := range resolveFields(c.headers, fields) {
		row[col] = value
	}
	return nil
}

func (m *MemoryStore) DeleteRow(_ context.Context, collection string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteLocked(collection, index)
}

func (m *MemoryStore) DeleteByKey(_ context.Context, collection string, keyCol int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.collection(collection)
	if err != nil {
		return err
	}
	index, err := findInRows(c.rows, keyCol, value)
	if err != nil {
		return err
	}
	return m.deleteLocked(collection, index)
}

func (m *MemoryStore) deleteLocked(collection string, index int) error {
	c, err := m.collection(collection)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.rows) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	c.rows = append(c.rows[:index], c.rows[index+1:]...)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func findInRows(rows [][]string, keyCol int, value string) (int, error) {
	for i, row := range rows {
		if keyCol < len(row) && row[keyCol] == value {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: key %q", ErrRowNotFound, value)
}
