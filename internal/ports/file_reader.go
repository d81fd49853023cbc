package ports

// FileReader reads an input file in a single call.
// Implementations return the underlying I/O error unchanged so callers can
// classify it with errors.Is (e.g. fs.ErrNotExist, fs.ErrPermission).
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}
