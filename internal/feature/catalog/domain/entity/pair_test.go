package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinPair_MarshalJSON(t *testing.T) {
	t.Parallel()

	pair := CoinPair{
		ID: "bitcoin",
		Coin: Coin{
			ID:               "bitcoin",
			Name:             "Bitcoin",
			Symbol:           "btc",
			PricesByCurrency: map[string]PriceSnapshot{},
		},
	}

	b, err := json.Marshal(pair)
	require.NoError(t, err)

	// The wire form must be a two-element array, id first.
	var raw []json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw, 2)

	var id string
	require.NoError(t, json.Unmarshal(raw[0], &id))
	assert.Equal(t, "bitcoin", id)
}

func TestCoinPair_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []CoinPair{
		{ID: "bitcoin", Coin: Coin{
			ID: "bitcoin", Name: "Bitcoin", Symbol: "btc",
			PricesByCurrency: map[string]PriceSnapshot{
				"eur": {CurrentPrice: 42000, MarketCap: 8e11},
			},
		}},
		{ID: "ethereum", Coin: Coin{
			ID: "ethereum", Name: "Ethereum", Symbol: "eth",
			PricesByCurrency: map[string]PriceSnapshot{},
		}},
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out []CoinPair
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestCoinPair_UnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not an array", data: `{"id":"bitcoin"}`},
		{name: "too few elements", data: `["bitcoin"]`},
		{name: "empty array", data: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p CoinPair
			assert.Error(t, json.Unmarshal([]byte(tt.data), &p))
		})
	}
}

func TestPairsFromMap_Ordered(t *testing.T) {
	t.Parallel()

	m := map[string]Coin{
		"zcash":    {ID: "zcash"},
		"bitcoin":  {ID: "bitcoin"},
		"ethereum": {ID: "ethereum"},
	}

	pairs := PairsFromMap(m)

	require.Len(t, pairs, 3)
	assert.Equal(t, "bitcoin", pairs[0].ID)
	assert.Equal(t, "ethereum", pairs[1].ID)
	assert.Equal(t, "zcash", pairs[2].ID)
}
