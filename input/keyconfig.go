package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// LoadKeyConfig builds a sparse override KeyTable from the [keys] and [special_keys] config tables
// Returns error on unknown intent names, invalid key names or multi-character rune keys
func LoadKeyConfig(runes, special map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(runes) > 0 {
		kt.Runes = make(map[rune]Intent, len(runes))
		for keyStr, val := range runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			intent, ok := ParseIntent(val)
			if !ok {
				return nil, fmt.Errorf("[keys] key %q: unknown action %q", keyStr, val)
			}
			kt.Runes[r] = intent
		}
	}

	if len(special) > 0 {
		kt.SpecialKeys = make(map[terminal.Key]Intent, len(special))
		for keyStr, val := range special {
			k, ok := terminal.KeyByName(strings.ToLower(keyStr))
			if !ok {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			intent, ok := ParseIntent(val)
			if !ok {
				return nil, fmt.Errorf("[special_keys] key %q: unknown action %q", keyStr, val)
			}
			kt.SpecialKeys[k] = intent
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
