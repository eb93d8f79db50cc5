package common

// Version is overridable at build time via -ldflags.
var Version = "dev"
