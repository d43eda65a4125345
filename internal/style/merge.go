package style

// Mergeable is implemented by every style record.
type Mergeable[S any] interface {
	Merge(override *S) S
}

// Merge resolves override against def. A nil override yields def.
func Merge[S Mergeable[S]](def S, override *S) S {
	return def.Merge(override)
}

// MergePositional merges overrides against defaults index by index. The
// result always has len(defaults) entries: missing or nil overrides fall back
// to the default at that index and surplus overrides are ignored.
func MergePositional[S Mergeable[S]](defaults []S, overrides []*S) []S {
	out := make([]S, len(defaults))
	for i, def := range defaults {
		var override *S
		if i < len(overrides) {
			override = overrides[i]
		}
		out[i] = def.Merge(override)
	}
	return out
}

// pick returns a copy of override when set, otherwise a copy of def.
func pick[T any](override, def *T) *T {
	if override != nil {
		return clone(override)
	}
	return clone(def)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}
