// Package yaml loads kong flag values from YAML configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
	"gopkg.in/yaml.v3"
)

// Ensure Loader satisfies kong.ConfigurationLoader at compile time.
var _ kong.ConfigurationLoader = Loader

// Loader reads a YAML mapping from r and returns a resolver that supplies
// flag values from it. Keys match flag names, either as written
// ("user-agent") or with underscores ("user_agent").
//
// An empty document resolves nothing.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, pagetext.Errorf(pagetext.EINVALID, "parse config: %v", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		raw, ok := values[flag.Name]
		if !ok {
			raw, ok = values[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !ok || raw == nil {
			return nil, nil
		}
		return scalar(flag.Name, raw)
	}
	return f, nil
}

// scalar renders a decoded YAML value as the string kong would read
// from the command line.
func scalar(name string, v any) (any, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return nil, pagetext.Errorf(pagetext.EINVALID, "config key %q must be a scalar", name)
	}
}
