package config

import (
	"fmt"
	"os"
	"strings"
)

// Options holds the settings shared by every txgen command.
type Options struct {
	OutDir   string   // directory JSON files are written to
	Endpoint string   // curl target; empty means the placeholder
	Networks []string // network keys to emit; empty means all
	Verbose  bool
}

// DefaultOutDir returns the output directory used when --out is not given:
// $TXGEN_OUT_DIR if set, otherwise the working directory.
func DefaultOutDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvOutDir)); dir != "" {
		return dir
	}
	return defaultOutDir
}

// CheckOutDir reports whether OutDir exists and is a directory. It does not
// create it.
func (o *Options) CheckOutDir() error {
	info, err := os.Stat(o.OutDir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", o.OutDir)
	}
	return nil
}
