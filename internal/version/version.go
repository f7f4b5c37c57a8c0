// internal/version/version.go
package version

// Version is overridden at release time via
// -ldflags "-X prip/internal/version.Version=v1.2.3".
var Version = "dev"
