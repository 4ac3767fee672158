package config

import "time"

// app constants
const (
	AppName        = "artspace"
	AppDescription = "A small gallery of animal photography for the terminal"
	Version        = "0.3.0"

	FileName  = "artspace.yaml"
	EnvFile   = ".env"
	EnvPrefix = "ARTSPACE"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ui constants
const (
	DefaultLongPress = 500 * time.Millisecond
	DefaultTooltips  = true
	DefaultAnimate   = true
	DefaultStats     = true
)

// asset constants
const (
	DefaultAssetPattern  = "*.txt"
	DefaultAssetDebounce = 200 * time.Millisecond
)
