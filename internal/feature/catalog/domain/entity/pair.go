package entity

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CoinPair is one [id, coin] element of the persisted map shape.
// Map-valued state goes through the key/value gateway as an ordered
// sequence of pairs, not as a native JSON object.
type CoinPair struct {
	ID   string
	Coin Coin
}

// MarshalJSON encodes the pair as a two-element JSON array.
func (p CoinPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.ID, p.Coin})
}

// UnmarshalJSON decodes a two-element JSON array into the pair.
func (p *CoinPair) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw[0] == nil || raw[1] == nil {
		return fmt.Errorf("coin pair: expected [id, coin], got %s", data)
	}
	if err := json.Unmarshal(raw[0], &p.ID); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Coin)
}

// PairsFromMap flattens a coin map into pairs ordered by id, so the
// persisted form is deterministic.
func PairsFromMap(m map[string]Coin) []CoinPair {
	pairs := make([]CoinPair, 0, len(m))
	for id, coin := range m {
		pairs = append(pairs, CoinPair{ID: id, Coin: coin})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
	return pairs
}
