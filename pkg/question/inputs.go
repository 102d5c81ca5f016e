package question

import "strings"

// Inputs is the answer map accumulated over one wizard session. Values are a
// string, a []string or an OptionItem.
type Inputs map[Name]any

// String returns the answer for name as a string. OptionItem answers yield
// their ID and string slices are joined with commas.
func (in Inputs) String(name Name) string {
	switch v := in[name].(type) {
	case string:
		return v
	case OptionItem:
		return v.ID
	case *OptionItem:
		if v == nil {
			return ""
		}
		return v.ID
	case []string:
		return strings.Join(v, ",")
	default:
		return ""
	}
}

// Item returns the OptionItem answer for name, if one was stored.
func (in Inputs) Item(name Name) (OptionItem, bool) {
	switch v := in[name].(type) {
	case OptionItem:
		return v, true
	case *OptionItem:
		if v != nil {
			return *v, true
		}
	}
	return OptionItem{}, false
}

// Has reports whether name has a non-empty answer.
func (in Inputs) Has(name Name) bool {
	return in.String(name) != ""
}

// Clone returns a copy that validators and resolvers can read without
// affecting the runner's map.
func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		if s, ok := v.([]string); ok {
			v = append([]string(nil), s...)
		}
		out[k] = v
	}
	return out
}

// Export converts the answers into a plain map suitable for YAML output.
func (in Inputs) Export() map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
