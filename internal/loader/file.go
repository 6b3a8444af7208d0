package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"

	"gopkg.in/yaml.v3"
)

// File reads the dataset from a .json, .yaml or .yml document whose field
// names match the JSON API.
type File struct {
	Path string
}

func (f File) Load(ctx context.Context) (content.Collections, error) {
	if err := ctx.Err(); err != nil {
		return content.Collections{}, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return content.Collections{}, fmt.Errorf("file loader: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		return decodeJSON(b)
	case ".yaml", ".yml":
		return decodeYAML(b)
	default:
		return content.Collections{}, fmt.Errorf("file loader: unsupported extension %q", ext)
	}
}

func decodeJSON(b []byte) (content.Collections, error) {
	var out content.Collections
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return content.Collections{}, fmt.Errorf("file loader: decode json: %w", err)
	}
	return out, nil
}

// decodeYAML converts the document to JSON first so the entity json tags
// stay the single source of field names.
func decodeYAML(b []byte) (content.Collections, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return content.Collections{}, fmt.Errorf("file loader: decode yaml: %w", err)
	}
	j, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return content.Collections{}, fmt.Errorf("file loader: yaml to json: %w", err)
	}
	return decodeJSON(j)
}

// normalizeYAML rewrites values json cannot represent the way the entities
// expect: unquoted dates become YYYY-MM-DD strings and non-string map keys
// are stringified.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(content.DateLayout)
		}
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
