package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/oakwood-commons/navtree/internal/config"
)

// outputFormat is a pflag.Value restricted to config.OutputFormats.
type outputFormat struct {
	value   string
	allowed []string
}

func newOutputFormat(def string, allowed ...string) *outputFormat {
	if len(allowed) == 0 {
		allowed = config.OutputFormats
	}
	return &outputFormat{value: def, allowed: allowed}
}

func (o *outputFormat) String() string { return o.value }

func (o *outputFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if !slices.Contains(o.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(o.allowed, "|"))
	}
	o.value = v
	return nil
}

func (o *outputFormat) Type() string { return "format" }

// usage returns the flag help text listing the allowed values.
func (o *outputFormat) usage() string {
	return "output format: " + strings.Join(o.allowed, "|")
}
