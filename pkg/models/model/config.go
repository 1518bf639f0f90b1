package model

import "strings"

// Config is an on/off switch read from flags or environment.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

// NewConfig reads s case-insensitively. Unknown values are Off.
func NewConfig(s string) Config {
	return configName[strings.ToLower(strings.TrimSpace(s))]
}

// ParseConfig is NewConfig that reports unknown values.
func ParseConfig(s string) (Config, bool) {
	c, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

func (c Config) String() string {
	if c {
		return "on"
	}
	return "off"
}

// Set and String let a Config back a flag.Value.
func (c *Config) Set(s string) error {
	*c = NewConfig(s)
	return nil
}

func (c *Config) IsBoolFlag() bool { return true }
