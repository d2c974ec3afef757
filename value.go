package enumset

import "fmt"

// normalizeValue validates a candidate symbol value and returns its canonical
// form. Booleans and strings pass through unchanged; every numeric type
// collapses to float64 so that values defined as one numeric type can be
// looked up as another (ByValue(3) finds a symbol defined with int64(3)).
// Aggregate and nil values are rejected.
func normalizeValue(v any) (any, error) {
	switch n := v.(type) {
	case bool:
		return n, nil
	case string:
		return n, nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return nil, fmt.Errorf("value of type %T is not a boolean, string, or number", v)
	}
}
