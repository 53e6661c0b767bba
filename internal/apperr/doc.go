// Package apperr defines shared error sentinels for demo. It has no internal
// imports so that config, output and cli can all wrap the same sentinels.
package apperr
