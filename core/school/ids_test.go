package school

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDs(t *testing.T) {
	ids := IDs{3, 1}

	assert.True(t, ids.Has(3))
	assert.False(t, ids.Has(2))
	assert.Equal(t, IDs{3, 1, 2}, ids.Add(2))
	assert.Equal(t, IDs{3, 1}, ids.Add(1))
	assert.Equal(t, IDs{1}, ids.Remove(3))
	assert.Equal(t, IDs{3, 1}, ids.Remove(7))
	assert.Equal(t, IDs{2, 1}, IDs{2, 1, 2, 1}.Unique())
	assert.Equal(t, IDs{1, 3}, ids.Sorted())
	assert.Equal(t, IDs{3, 1}, ids, "ids is left untouched")
}

func TestIDs_MarshalJSON(t *testing.T) {
	var ids IDs
	data, err := json.Marshal(struct {
		IDs IDs `json:"ids"`
	}{ids})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"ids": []}`, string(data))

	data, err = json.Marshal(IDs{1, 2})
	assert.NoError(t, err)
	assert.JSONEq(t, `[1, 2]`, string(data))
}
