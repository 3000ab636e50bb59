package utils

import (
	"fmt"
	"os"
)

// ReadJSONFile decodes the JSON document at path into val.
func ReadJSONFile(path string, val any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = UnmarshalJSON(data, val); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
