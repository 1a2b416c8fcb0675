package config

import _ "embed"

// defaultConfig is the embedded built-in configuration, always loaded first
//
//go:embed chunksplit.toml
var defaultConfig []byte
