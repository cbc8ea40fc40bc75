package pregex

import (
	"fmt"
	"os"
)

// TextFromFile returns the entire contents of the file at path, to be used
// as subject text for matching.
func TextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading subject file: %w", err)
	}
	return string(data), nil
}
