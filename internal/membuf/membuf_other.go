//go:build !unix

package membuf

// mapAnon falls back to the Go heap when mmap is not available.
func mapAnon(n int) ([]byte, func([]byte) error, error) {
	return make([]byte, n), nil, nil
}
