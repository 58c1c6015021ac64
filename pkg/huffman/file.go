package huffman

import (
	"fmt"
	"os"

	"github.com/bastiangx/wordseek/internal/utils"
)

// SaveToFile writes data to path byte for byte, replacing any existing file
// atomically.
func (c *Codec) SaveToFile(path string, data []byte) error {
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// LoadFromFile reads the whole file at path. A missing file yields an error
// wrapping fs.ErrNotExist.
func (c *Codec) LoadFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return data, nil
}
