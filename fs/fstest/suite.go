// Package fstest provides a conformance test suite for validating stream
// implementations against the core.File interface contracts.
//
// This package contains test functions that can be imported and executed by
// packages exposing file-like handles to verify they correctly implement
// core.File and its optional capabilities (io.Seeker, io.ReaderAt,
// io.WriterAt, core.Truncater, core.Syncer, core.LineReader).
//
// The suite validates interface contracts, not backend-specific behavior.
// Capabilities a handle does not implement are skipped.
//
// Example usage:
//
//	func TestMyStream(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T, content []byte) core.File {
//	        return mystream.New(content)
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/memio/fs/core"
)

// Opener returns a fresh read-write handle positioned at offset 0 whose
// content is a copy of content. Each call must be independent of the others.
type Opener func(t *testing.T, content []byte) core.File

// Config configures the test suite to match handle behavior characteristics.
type Config struct {
	// SparseWrites indicates writes past the end zero-fill the gap.
	SparseWrites bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "FileCapabilities/Syncer").
	SkipTests []string
}

// DefaultConfig returns the configuration for in-memory and POSIX-like
// handles.
func DefaultConfig() Config {
	return Config{SparseWrites: true}
}

// TestSuite runs all applicable conformance tests against handles returned
// by open. Uses DefaultConfig() by default.
func TestSuite(t *testing.T, open Opener) {
	TestSuiteWithConfig(t, open, DefaultConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, open Opener, config Config) {
	t.Run("ReadWrite", func(t *testing.T) {
		TestReadWriteWithConfig(t, open, config)
	})
	t.Run("FileCapabilities", func(t *testing.T) {
		TestFileCapabilitiesWithConfig(t, open, config)
	})
	t.Run("LineReader", func(t *testing.T) {
		TestLineReaderWithConfig(t, open, config)
	})
}

func skipper(group string, config Config) func(t *testing.T, name string) {
	return func(t *testing.T, name string) {
		t.Helper()
		full := group + "/" + name
		for _, skip := range config.SkipTests {
			if skip == full {
				t.Skip("Skipped by provider configuration")
			}
		}
	}
}

func closeFile(t *testing.T, f core.File) {
	t.Helper()
	if err := f.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
}
