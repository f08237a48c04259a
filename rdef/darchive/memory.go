package darchive

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"rune-savior/rdef/dhash"
)

// Memory is an Archive held entirely in memory. It is safe for concurrent
// use.
type Memory struct {
	mu      sync.RWMutex
	records map[Table]map[int32][]byte
	names   map[Table]map[int32]int32
}

func NewMemory() *Memory {
	return &Memory{
		records: map[Table]map[int32][]byte{},
		names:   map[Table]map[int32]int32{},
	}
}

func (m *Memory) BytesFor(_ context.Context, table Table, id int32) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bs, ok := m.records[table][id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "table %s id %d", table, id)
	}
	result := make([]byte, len(bs))
	copy(result, bs)
	return result, nil
}

func (m *Memory) IDsIn(_ context.Context, table Table) ([]int32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := lo.Keys(m.records[table])
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *Memory) IDByName(_ context.Context, table Table, name string) (int32, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.names[table][dhash.HashName(name)]
	return id, ok, nil
}

func (m *Memory) Put(_ context.Context, table Table, id int32, bs []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records[table] == nil {
		m.records[table] = map[int32][]byte{}
	}
	stored := make([]byte, len(bs))
	copy(stored, bs)
	m.records[table][id] = stored
	return nil
}

// PutName adds name to the table's name index.
func (m *Memory) PutName(table Table, name string, id int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.names[table] == nil {
		m.names[table] = map[int32]int32{}
	}
	m.names[table][dhash.HashName(name)] = id
}
