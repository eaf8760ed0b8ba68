package events

import (
	"encoding/json"
	"fmt"
	"math"
)

// Int converts a decoded parameter to int.
// Data decoded from JSON or CUE may carry numbers in several representations.
func Int(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(math.Trunc(float64(v)))
	case float64:
		return int(math.Trunc(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(math.Trunc(f))
		}
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func String(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
