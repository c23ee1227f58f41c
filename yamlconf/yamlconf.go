/*
Package yamlconf implements a schuko configuration read from YAML.

Nested maps are flattened into dotted keys, i.e.

    styling:
      cache:
        shared: true

is available as key "styling.cache.shared".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yamlconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Conf is a flat configuration map.
type Conf map[string]interface{}

// Load reads a YAML configuration file.
func Load(path string) (Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return c, nil
}

// Parse reads a configuration from YAML data. The document must be a
// mapping (or empty).
func Parse(data []byte) (Conf, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	c := make(Conf)
	c.flatten("", doc)
	return c, nil
}

func (c Conf) flatten(prefix string, m map[string]interface{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			c.flatten(key, sub)
			continue
		}
		c[key] = v
	}
}

// InitDefaults is part of interface schuko.Configuration.
// Keys of Defaults not present in c are added.
func (c Conf) InitDefaults() {
	for k, v := range Defaults {
		if _, ok := c[k]; !ok {
			c[k] = v
		}
	}
}

// Defaults are the values InitDefaults fills in.
var Defaults = map[string]interface{}{
	"tracing.adapter": "zap",
	"trace.root":      "Error",
}

// IsSet is part of interface schuko.Configuration.
func (c Conf) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c Conf) GetString(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration.
func (c Conf) GetInt(key string) int {
	switch x := c[key].(type) {
	case int:
		return x
	case int64:
		return int(x)
	case uint64:
		return int(x)
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c Conf) GetBool(key string) bool {
	switch x := c[key].(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case int:
		return x != 0
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c Conf) IsInteractive() bool {
	return c.GetBool("interactive")
}

var _ schuko.Configuration = Conf{}
