package coursefile

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse decodes YAML course definition bytes.
func Parse(data []byte) (*CourseFile, error) {
	var cf CourseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing course file: %w", err)
	}
	return &cf, nil
}

// ParseFile reads and decodes a course definition from disk.
func ParseFile(path string) (*CourseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file %s: %w", path, err)
	}
	return Parse(data)
}
