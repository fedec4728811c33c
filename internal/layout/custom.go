package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gg582/hancomb/internal/hangul"
)

// CustomPair overrides a single key of a layout.
type CustomPair struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func LoadCustomPairs(path string) ([]CustomPair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open custom keypair file: %w", err)
	}
	defer file.Close()

	var pairs []CustomPair
	if err := json.NewDecoder(file).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("parse custom keypair file: %w", err)
	}
	return pairs, nil
}

func ApplyCustomPairs(l *Layout, pairs []CustomPair) error {
	for _, pair := range pairs {
		key, err := singleRune(pair.Key)
		if err != nil {
			return fmt.Errorf("custom keypair key: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(pair.Kind)) {
		case "text":
			l.ApplyOverride(key, NewTextSymbol(pair.Value))
		case "jamo":
			value, err := singleRune(pair.Value)
			if err != nil {
				return fmt.Errorf("custom keypair %q: %w", pair.Key, err)
			}
			switch hangul.Classify(value).Role {
			case hangul.RoleInitial, hangul.RoleMedial, hangul.RoleFinal:
			default:
				return fmt.Errorf("custom keypair %q: %U is not a positional jamo", pair.Key, value)
			}
			l.ApplyOverride(key, NewJamoSymbol(value))
		case "passthrough", "":
			l.ApplyOverride(key, nil)
		default:
			return fmt.Errorf("unsupported custom keypair kind '%s'", pair.Kind)
		}
	}
	return nil
}

func singleRune(value string) (rune, error) {
	r := []rune(value)
	if len(r) != 1 {
		return 0, fmt.Errorf("value must be a single rune, got %q", value)
	}
	return r[0], nil
}
