// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a configuration string like "heuristic=lower_bound,greedy_home".
package parameters

import (
	"strconv"
	"strings"
	"time"

	"github.com/janpfeifer/amphipodGo/internal/generics"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | uint64 | float64 | string | time.Duration
}

// NewFromConfigString create params from user's configuration string: a comma-separated
// list of "key=value" or "key" (a flag, with an empty value).
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Values may contain '='.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			parsed = true
		case "false", "0":
			parsed = false
		default:
			err = errors.Errorf("invalid bool value %q", value)
		}
	case int:
		parsed, err = strconv.Atoi(value)
	case uint64:
		parsed, err = strconv.ParseUint(value, 10, 64)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	case time.Duration:
		parsed, err = time.ParseDuration(value)
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to %T", key, value, defaultValue)
	}
	return parsed.(T), nil
}

// CheckConsumed returns an error listing the parameters left in params, if any. Use it after
// popping all known parameters, to report typos in the configuration.
func CheckConsumed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	return errors.Errorf("unknown parameters \"%s\"", strings.Join(generics.SortedKeys(params), "\", \""))
}
