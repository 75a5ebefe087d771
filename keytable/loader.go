package keytable

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/domkey/keyevent"
)

// tableFile is the on-disk TOML shape:
//
//	fallback = "Unidentified"   # optional
//
//	[keys]
//	13 = "Enter"
//	27 = "Escape"
type tableFile struct {
	Fallback string            `toml:"fallback"`
	Keys     map[string]string `toml:"keys"`
}

// Load reads a table from a TOML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "reading file", Err: err}
	}
	return parse(path, data)
}

// Parse reads a table from raw TOML data.
func Parse(data []byte) (*Table, error) {
	return parse("<data>", data)
}

func parse(path string, data []byte) (*Table, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: err.Error(), Err: err}
	}

	mapping := make(map[int]keyevent.Identifier, len(file.Keys))
	for key, name := range file.Keys {
		code, err := strconv.Atoi(key)
		if err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: fmt.Sprintf("keys.%s: %v", key, ErrInvalidCode),
				Err:     ErrInvalidCode,
			}
		}
		if name == "" {
			return nil, &LoadError{
				Path:    path,
				Message: fmt.Sprintf("keys.%s: %v", key, ErrEmptyIdentifier),
				Err:     ErrEmptyIdentifier,
			}
		}
		// TOML rejects repeated keys, but "13" and "013" are distinct
		// keys that collide once parsed.
		if _, ok := mapping[code]; ok {
			return nil, &LoadError{
				Path:    path,
				Message: fmt.Sprintf("keys.%s: %v", key, ErrDuplicateCode),
				Err:     ErrDuplicateCode,
			}
		}
		mapping[code] = keyevent.Identifier(name)
	}

	fallback := keyevent.KeyUnidentified
	if file.Fallback != "" {
		fallback = keyevent.Identifier(file.Fallback)
	}
	return NewWithFallback(mapping, fallback), nil
}
