//go:build unit || e2e

package testutil

// Field sets key, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// SegmentField applies Field to the i-th entry of "details". Out of range is a no-op.
func SegmentField(i int, key string, value any) func(m map[string]any) {
	set := Field(key, value)
	return func(m map[string]any) {
		details, ok := m["details"].([]any)
		if !ok || i < 0 || i >= len(details) {
			return
		}
		if seg, ok := details[i].(map[string]any); ok {
			set(seg)
		}
	}
}
