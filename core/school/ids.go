package school

import (
	"encoding/json"
	"sort"
)

// IDs is an ordered set of entity ids. Order is insertion order.
type IDs []int

func (ids IDs) Has(id int) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

// Add returns ids with id appended, unless it is already present.
func (ids IDs) Add(id int) IDs {
	if ids.Has(id) {
		return ids
	}
	return append(ids, id)
}

// Remove returns ids without id.
func (ids IDs) Remove(id int) IDs {
	res := make(IDs, 0, len(ids))
	for _, i := range ids {
		if i != id {
			res = append(res, i)
		}
	}
	return res
}

// Clone returns a copy of ids that never aliases the original; nil becomes empty.
func (ids IDs) Clone() IDs {
	res := make(IDs, len(ids))
	copy(res, ids)
	return res
}

// Unique drops duplicate ids, keeping the first occurrence.
func (ids IDs) Unique() IDs {
	res := make(IDs, 0, len(ids))
	for _, id := range ids {
		res = res.Add(id)
	}
	return res
}

// Sorted returns an ascending copy of ids.
func (ids IDs) Sorted() IDs {
	res := ids.Clone()
	sort.Ints(res)
	return res
}

// MarshalJSON always renders an array, never null.
func (ids IDs) MarshalJSON() ([]byte, error) {
	if ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int(ids))
}
