package meshgen

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formats accepted by Encode.
const (
	FormatOBJ  = "obj"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Encode writes m to w as OBJ, YAML or JSON.
func Encode(w io.Writer, m Mesh, format string) error {
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, m, "cube")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("meshgen: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("meshgen: json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("meshgen: unknown format %q", format)
}
