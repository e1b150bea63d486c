package tools

// Argument extraction helpers. Inputs arrive as decoded JSON, so numbers are
// float64 unless a caller already normalized them.

func StringArg(input map[string]any, name string) string {
	v, _ := input[name].(string)
	return v
}

func BoolArg(input map[string]any, name string) bool {
	v, _ := input[name].(bool)
	return v
}

func IntArg(input map[string]any, name string, def int) int {
	switch v := input[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

func FloatSliceArg(input map[string]any, name string) []float32 {
	raw, ok := input[name].([]any)
	if !ok {
		return nil
	}
	vals := make([]float32, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		vals = append(vals, float32(f))
	}
	return vals
}

func StringSliceArg(input map[string]any, name string) []string {
	raw, ok := input[name].([]any)
	if !ok {
		return nil
	}
	vals := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		vals = append(vals, s)
	}
	return vals
}

func StringMapArg(input map[string]any, name string) map[string]string {
	raw, ok := input[name].(map[string]any)
	if !ok {
		return nil
	}
	vals := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			vals[k] = s
		}
	}
	return vals
}
