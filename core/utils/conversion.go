package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToUint converts various types to a positive uint ID.
// It handles integer types, whole floats (as decoded from JSON), strings and byte slices.
func ToUint(val any) (uint, error) {
	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case int32:
		n = int64(v)
	case uint:
		if v == 0 {
			break
		}
		return v, nil
	case uint64:
		if v > math.MaxUint32 {
			return 0, fmt.Errorf("id out of range: %d", v)
		}
		n = int64(v)
	case uint32:
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || v > math.MaxUint32 {
			return 0, fmt.Errorf("invalid id: %v", v)
		}
		n = int64(v)
	case string:
		return parseUint(v)
	case []byte:
		return parseUint(string(v))
	default:
		return 0, fmt.Errorf("invalid id type %T", val)
	}

	if n <= 0 {
		return 0, fmt.Errorf("invalid id: %v", val)
	}
	return uint(n), nil
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return uint(n), nil
}

// ParseIDs converts every value to an ID, failing on the first invalid one.
func ParseIDs(values []any) ([]uint, error) {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		id, err := ToUint(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
