package config

import (
	"fmt"
	"strings"

	"github.com/fyde/connector-install/types"
)

// EnvPrefix is the namespace every connector environment variable lives
// under. Keys supplied without it are prefixed automatically.
const EnvPrefix = "FYDE_"

// NormalizeKey canonicalizes an extra-variable key: uppercase, dashes
// folded to underscores, EnvPrefix prepended when missing.
func NormalizeKey(key string) string {
	k := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(key), "-", "_"))
	if !strings.HasPrefix(k, EnvPrefix) {
		k = EnvPrefix + k
	}
	return k
}

// ParseExtraVar splits a raw KEY=VALUE argument and normalizes the key.
func ParseExtraVar(raw string) (types.EnvVar, error) {
	key, value, found := strings.Cut(raw, "=")
	if !found || strings.TrimSpace(key) == "" {
		return types.EnvVar{}, fmt.Errorf("extra variable %q is not in KEY=VALUE form", raw)
	}
	return types.EnvVar{Key: NormalizeKey(key), Value: value}, nil
}

// ResolveExtraVars parses and normalizes a list of raw KEY=VALUE
// arguments. Keys are unique after prefixing: a duplicate key overwrites
// the earlier value but keeps its original position, so the resolution
// order seen by the override writer is the first-appearance order.
func ResolveExtraVars(raw []string) ([]types.EnvVar, error) {
	var vars []types.EnvVar
	index := make(map[string]int)
	for _, r := range raw {
		ev, err := ParseExtraVar(r)
		if err != nil {
			return nil, err
		}
		if i, seen := index[ev.Key]; seen {
			vars[i].Value = ev.Value
			continue
		}
		index[ev.Key] = len(vars)
		vars = append(vars, ev)
	}
	return vars, nil
}
