package safa

// grow extends s with zero values until it has length size, used by
// safaBuilder.declare to keep the per-state transition arena sized to
// maxStateID+1 as new states are declared.
func grow[T any](s []T, size int) []T {
	if len(s) >= size {
		return s
	}
	var empty T
	add := size - len(s)
	for i := 0; i < add; i++ {
		s = append(s, empty)
	}
	return s
}
