// Package bridge translates between the legacy schema record tree and
// the modern normalized state tree (§4.6), including entity ID
// remapping and the REF-slot derivation protocol.
package bridge

// IdMap holds the bridge's two entity ID remappings (§4.6.1): trade
// route and colony, each mapping a modern 1-based ID to a legacy
// 0-based vector index and back. When a mapping has no entries,
// callers fall back to the default new_id = old_index + 1; callers
// may populate either direction explicitly to express a non-default
// re-ordering.
type IdMap struct {
	tradeRouteIDToIndex map[int]int
	tradeRouteIndexToID map[int]int
	colonyIDToIndex     map[int]int
	colonyIndexToID     map[int]int
}

// NewIdMap returns an empty IdMap; every lookup falls back to the
// default 1-based/0-based correspondence until entries are added.
func NewIdMap() *IdMap {
	return &IdMap{
		tradeRouteIDToIndex: map[int]int{},
		tradeRouteIndexToID: map[int]int{},
		colonyIDToIndex:     map[int]int{},
		colonyIndexToID:     map[int]int{},
	}
}

// SetTradeRoute records that modern ID maps to legacy index idx, in
// both directions.
func (m *IdMap) SetTradeRoute(id, idx int) {
	m.tradeRouteIDToIndex[id] = idx
	m.tradeRouteIndexToID[idx] = id
}

// SetColony records that modern ID maps to legacy index idx, in both
// directions.
func (m *IdMap) SetColony(id, idx int) {
	m.colonyIDToIndex[id] = idx
	m.colonyIndexToID[idx] = id
}

// TradeRouteIndex returns the legacy vector index for modern ID id,
// defaulting to id-1 if no explicit override was set.
func (m *IdMap) TradeRouteIndex(id int) int {
	if idx, ok := m.tradeRouteIDToIndex[id]; ok {
		return idx
	}
	return id - 1
}

// TradeRouteID returns the modern ID for legacy vector index idx,
// defaulting to idx+1 if no explicit override was set.
func (m *IdMap) TradeRouteID(idx int) int {
	if id, ok := m.tradeRouteIndexToID[idx]; ok {
		return id
	}
	return idx + 1
}

// ColonyIndex returns the legacy vector index for modern ID id,
// defaulting to id-1 if no explicit override was set.
func (m *IdMap) ColonyIndex(id int) int {
	if idx, ok := m.colonyIDToIndex[id]; ok {
		return idx
	}
	return id - 1
}

// ColonyID returns the modern ID for legacy vector index idx,
// defaulting to idx+1 if no explicit override was set.
func (m *IdMap) ColonyID(idx int) int {
	if id, ok := m.colonyIndexToID[idx]; ok {
		return id
	}
	return idx + 1
}
