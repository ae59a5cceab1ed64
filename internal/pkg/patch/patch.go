package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps an optional field unless the patch carries a value.
// An empty string in a *string patch clears the field.
func CoalescePtr(patch *string, current *string) *string {
	if patch == nil {
		return current
	}
	if *patch == "" {
		return nil
	}
	v := *patch
	return &v
}

// CoalesceSlice replaces current only when the patch slice is non-nil.
func CoalesceSlice[T any](patch []T, current []T) []T {
	if patch != nil {
		return patch
	}
	return current
}
