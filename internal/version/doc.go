// Package version reports build metadata for the demo binary. The semantic
// version comes from demo.Version; the commit and build date are injected
// via ldflags and otherwise recovered from runtime/debug.BuildInfo.
package version
