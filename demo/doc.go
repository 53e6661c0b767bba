// Package demo is the library surface of demo-project: a fixed greeting and
// the project's semantic version.
package demo
