package fstest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/memio/fs/core"
)

// TestFileCapabilities tests optional File-level capabilities.
// Tests: io.Seeker, io.ReaderAt, io.WriterAt, core.Truncater, core.Syncer.
// Uses type assertions on handles returned by open - skips unsupported capabilities.
// Uses DefaultConfig() by default.
func TestFileCapabilities(t *testing.T, open Opener) {
	TestFileCapabilitiesWithConfig(t, open, DefaultConfig())
}

// TestFileCapabilitiesWithConfig tests file capabilities with behavior configuration.
func TestFileCapabilitiesWithConfig(t *testing.T, open Opener, config Config) {
	skip := skipper("FileCapabilities", config)

	t.Run("Seeker", func(t *testing.T) {
		skip(t, "Seeker")
		testFileCapabilitySeeker(t, open, config)
	})
	t.Run("ReaderAt", func(t *testing.T) {
		skip(t, "ReaderAt")
		testFileCapabilityReaderAt(t, open)
	})
	t.Run("WriterAt", func(t *testing.T) {
		skip(t, "WriterAt")
		testFileCapabilityWriterAt(t, open, config)
	})
	t.Run("Truncater", func(t *testing.T) {
		skip(t, "Truncater")
		testFileCapabilityTruncater(t, open)
	})
	t.Run("Syncer", func(t *testing.T) {
		skip(t, "Syncer")
		testFileCapabilitySyncer(t, open)
	})
}

// testFileCapabilitySeeker tests io.Seeker capability on file handles.
//
//nolint:gocyclo,cyclop // Test function with multiple validation checks
func testFileCapabilitySeeker(t *testing.T, open Opener, config Config) {
	testContent := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	f := open(t, testContent)
	defer closeFile(t, f)

	seeker, ok := f.(io.Seeker)
	if !ok {
		t.Skip("io.Seeker not supported by this file implementation")
	}

	// Test 1: Seek to position 10 from start
	pos, err := seeker.Seek(10, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek(10, SeekStart): got error %v, want nil", err)
	}
	if pos != 10 {
		t.Errorf("Seek(10, SeekStart): position = %d, want 10", pos)
	}

	buf := make([]byte, 5)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read() after Seek: got error %v, want nil", err)
	}
	if !bytes.Equal(buf[:n], []byte("abcde")) {
		t.Errorf("Read() after Seek(10): got %q, want %q", buf[:n], "abcde")
	}

	// Test 2: Seek from current position
	pos, err = seeker.Seek(5, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek(5, SeekCurrent): got error %v, want nil", err)
	}
	if pos != 20 {
		t.Errorf("Seek(5, SeekCurrent): position = %d, want 20", pos)
	}

	// Test 3: Seek from end
	pos, err = seeker.Seek(-5, io.SeekEnd)
	if err != nil {
		t.Fatalf("Seek(-5, SeekEnd): got error %v, want nil", err)
	}
	if want := int64(len(testContent) - 5); pos != want {
		t.Errorf("Seek(-5, SeekEnd): position = %d, want %d", pos, want)
	}
	n, err = f.Read(buf)
	if err != nil {
		t.Fatalf("Read() after Seek from end: got error %v, want nil", err)
	}
	if !bytes.Equal(buf[:n], []byte("vwxyz")) {
		t.Errorf("Read() after Seek(-5, SeekEnd): got %q, want %q", buf[:n], "vwxyz")
	}

	// Test 4: Seek before the start fails
	if _, err := seeker.Seek(-1, io.SeekStart); err == nil {
		t.Errorf("Seek(-1, SeekStart): got nil, want error")
	}

	if !config.SparseWrites {
		return
	}

	// Test 5: Seek past the end, then write
	pos, err = seeker.Seek(int64(len(testContent)+4), io.SeekStart)
	if err != nil {
		t.Fatalf("Seek past end: got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("!")); err != nil {
		t.Fatalf("Write() past end: got error %v, want nil", err)
	}
	got := contentOf(t, f)
	if len(got) != int(pos)+1 {
		t.Fatalf("Content length after sparse Write: got %d, want %d", len(got), pos+1)
	}
	if want := append(append([]byte{}, testContent...), 0, 0, 0, 0, '!'); !bytes.Equal(got, want) {
		t.Errorf("Content after sparse Write: got %q, want %q", got, want)
	}
}

// testFileCapabilityReaderAt tests io.ReaderAt capability on file handles.
//
//nolint:gocyclo,cyclop // Test function with multiple validation checks
func testFileCapabilityReaderAt(t *testing.T, open Opener) {
	testContent := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	f := open(t, testContent)
	defer closeFile(t, f)

	readerAt, ok := f.(io.ReaderAt)
	if !ok {
		t.Skip("io.ReaderAt not supported by this file implementation")
	}

	// Test 1: ReadAt from offset 10
	buf := make([]byte, 5)
	n, err := readerAt.ReadAt(buf, 10)
	if err != nil {
		t.Errorf("ReadAt(buf, 10): got error %v, want nil", err)
	}
	if !bytes.Equal(buf[:n], []byte("abcde")) {
		t.Errorf("ReadAt(buf, 10): got %q, want %q", buf[:n], "abcde")
	}

	// Test 2: ReadAt across the end returns the tail and io.EOF
	buf2 := make([]byte, 10)
	offset := int64(len(testContent) - 3)
	n, err = readerAt.ReadAt(buf2, offset)
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadAt(buf2, %d): got error %v, want io.EOF", offset, err)
	}
	if !bytes.Equal(buf2[:n], []byte("xyz")) {
		t.Errorf("ReadAt(buf2, %d): got %q, want %q", offset, buf2[:n], "xyz")
	}

	// Test 3: ReadAt does not affect the read position
	bufRegular := make([]byte, 3)
	n, err = f.Read(bufRegular)
	if err != nil {
		t.Fatalf("Read() after ReadAt: got error %v, want nil", err)
	}
	if !bytes.Equal(bufRegular[:n], []byte("012")) {
		t.Errorf("Read() after ReadAt: got %q, want %q (ReadAt should not affect read position)", bufRegular[:n], "012")
	}
}

// testFileCapabilityWriterAt tests io.WriterAt capability on file handles.
func testFileCapabilityWriterAt(t *testing.T, open Opener, config Config) {
	f := open(t, []byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	defer closeFile(t, f)

	writerAt, ok := f.(io.WriterAt)
	if !ok {
		t.Skip("io.WriterAt not supported by this file implementation")
	}

	// Test 1: WriteAt replaces bytes at offset 10-14
	n, err := writerAt.WriteAt([]byte("ABCDE"), 10)
	if err != nil {
		t.Fatalf("WriteAt(ABCDE, 10): got error %v, want nil", err)
	}
	if n != 5 {
		t.Errorf("WriteAt(ABCDE, 10): wrote %d bytes, want 5", n)
	}
	got := contentOf(t, f)
	if want := []byte("0123456789ABCDEfghijklmnopqrstuvwxyz"); !bytes.Equal(got, want) {
		t.Errorf("Content after WriteAt(ABCDE, 10): got %q, want %q", got, want)
	}

	// Test 2: WriteAt does not move the position
	buf := make([]byte, 3)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read() after WriteAt: got error %v, want nil", err)
	}
	if !bytes.Equal(buf, []byte("012")) {
		t.Errorf("Read() after WriteAt: got %q, want %q", buf, "012")
	}

	if !config.SparseWrites {
		return
	}

	// Test 3: WriteAt past the end zero-fills the gap
	if _, err := writerAt.WriteAt([]byte("Z"), 38); err != nil {
		t.Fatalf("WriteAt(Z, 38): got error %v, want nil", err)
	}
	got = contentOf(t, f)
	if len(got) != 39 {
		t.Fatalf("Content length after WriteAt(Z, 38): got %d, want 39", len(got))
	}
	if got[36] != 0 || got[37] != 0 || got[38] != 'Z' {
		t.Errorf("Content tail after WriteAt(Z, 38): got %q, want %q", got[36:], "\x00\x00Z")
	}
}

// testFileCapabilityTruncater tests core.Truncater capability on file handles.
func testFileCapabilityTruncater(t *testing.T, open Opener) {
	tests := []struct {
		name    string
		initial string
		size    int64
		want    []byte
	}{
		{name: "TruncateSmaller", initial: "0123456789abcdef", size: 10, want: []byte("0123456789")},
		{name: "TruncateLarger", initial: "0123456789", size: 14, want: []byte("0123456789\x00\x00\x00\x00")},
		{name: "TruncateSameSize", initial: "0123456789", size: 10, want: []byte("0123456789")},
		{name: "TruncateEmpty", initial: "0123456789", size: 0, want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := open(t, []byte(tt.initial))
			defer closeFile(t, f)

			truncater, ok := f.(core.Truncater)
			if !ok {
				t.Skip("core.Truncater not supported by this file implementation")
			}
			if err := truncater.Truncate(tt.size); err != nil {
				t.Fatalf("Truncate(%d): got error %v, want nil", tt.size, err)
			}

			info, err := f.Stat()
			if err != nil {
				t.Fatalf("Stat() after Truncate: got error %v, want nil", err)
			}
			if info.Size() != tt.size {
				t.Errorf("Stat() after Truncate(%d): Size() = %d", tt.size, info.Size())
			}
			if got := contentOf(t, f); !bytes.Equal(got, tt.want) {
				t.Errorf("Content after Truncate(%d): got %q, want %q", tt.size, got, tt.want)
			}
		})
	}

	t.Run("TruncateNegative", func(t *testing.T) {
		f := open(t, []byte("abc"))
		defer closeFile(t, f)

		truncater, ok := f.(core.Truncater)
		if !ok {
			t.Skip("core.Truncater not supported by this file implementation")
		}
		if err := truncater.Truncate(-1); err == nil {
			t.Errorf("Truncate(-1): got nil, want error")
		}
	})
}

// testFileCapabilitySyncer tests core.Syncer capability on file handles.
func testFileCapabilitySyncer(t *testing.T, open Opener) {
	f := open(t, []byte("initial"))
	defer closeFile(t, f)

	syncer, ok := f.(core.Syncer)
	if !ok {
		t.Skip("core.Syncer not supported by this file implementation")
	}

	if _, err := f.Write([]byte("synced data")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}

	// Sync multiple times (should be idempotent)
	for i := 0; i < 3; i++ {
		if err := syncer.Sync(); err != nil {
			t.Errorf("Sync() iteration %d: got error %v, want nil", i, err)
		}
	}

	if got := contentOf(t, f); !bytes.Equal(got, []byte("synced data")) {
		t.Errorf("Content after Sync: got %q, want %q", got, "synced data")
	}
}
