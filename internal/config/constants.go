package config

// Environment variables read at startup.
const (
	EnvOutDir = "TXGEN_OUT_DIR" // overrides the default of --out
)

const defaultOutDir = "."
