package config

// Version is the wastelog binary version.
// Set at build time via: -ldflags "-X github.com/wastelabs/wastelog/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
