package utilities

// Contains report whether v is an element of slice
func Contains[T comparable](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}
	return false
}
