package fs

import "os"

// OSFileReader implements ports.FileReader on the local file system.
type OSFileReader struct{}

// NewOSFileReader creates a new OSFileReader.
func NewOSFileReader() *OSFileReader {
	return &OSFileReader{}
}

// ReadFile reads the whole file at path.
func (OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
