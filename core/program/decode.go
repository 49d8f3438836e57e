package program

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a Program from a JSON or YAML file, picking the codec from the
// file extension.
func Load(path string) (Program, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Program{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var p Program
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &p)
	case ".json":
		err = json.Unmarshal(b, &p)
	default:
		return Program{}, fmt.Errorf("unsupported program format: %s", ext)
	}
	if err != nil {
		return Program{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return p, nil
}

// Decode reads a Program from r in the given format ("yaml" or "json").
func Decode(r io.Reader, format string) (Program, error) {
	var p Program
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return p, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return p, err
		}
	default:
		return p, fmt.Errorf("unsupported format: %s", format)
	}
	return p, nil
}

// complexAmp converts a magnitude/phase pair into the complex amplitude used
// by the envelope types.
func complexAmp(amp, phase float64) complex128 {
	if phase == 0 {
		return complex(amp, 0)
	}
	return complex(amp*math.Cos(phase), amp*math.Sin(phase))
}
