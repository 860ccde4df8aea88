package content

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed defaults/*.json
var defaultFiles embed.FS

// decodeDefault decodes the embedded copy of s into c. Each call decodes
// afresh, so results never share slices.
func decodeDefault(c *Content, s Section) error {
	b, err := defaultFiles.ReadFile("defaults/" + s.File())
	if err != nil {
		return fmt.Errorf("read default %s: %w", s, err)
	}
	if err := json.Unmarshal(b, c.target(s)); err != nil {
		return fmt.Errorf("decode default %s: %w", s, err)
	}
	return nil
}

// Defaults returns the compiled-in content.
func Defaults() Content {
	var c Content
	for _, s := range Sections {
		if err := decodeDefault(&c, s); err != nil {
			// The embedded files are part of the build; failing here is a
			// packaging bug.
			panic(err)
		}
	}
	return c
}
