// Package testutil provides helpers for tests that touch decor's
// environment: isolated config and state directories, and files on disk.
package testutil
