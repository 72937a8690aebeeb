package fstest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/memio/fs/core"
)

// TestReadWrite tests the io.Reader and io.Writer contracts of core.File.
// Uses DefaultConfig() by default.
func TestReadWrite(t *testing.T, open Opener) {
	TestReadWriteWithConfig(t, open, DefaultConfig())
}

// TestReadWriteWithConfig tests read and write behavior with configuration.
func TestReadWriteWithConfig(t *testing.T, open Opener, config Config) {
	skip := skipper("ReadWrite", config)

	t.Run("ReadAll", func(t *testing.T) {
		skip(t, "ReadAll")
		testReadAll(t, open)
	})
	t.Run("ReadAtEOF", func(t *testing.T) {
		skip(t, "ReadAtEOF")
		testReadAtEOF(t, open)
	})
	t.Run("OverwriteInPlace", func(t *testing.T) {
		skip(t, "OverwriteInPlace")
		testOverwriteInPlace(t, open)
	})
	t.Run("Stat", func(t *testing.T) {
		skip(t, "Stat")
		testStat(t, open)
	})
	t.Run("CloseTwice", func(t *testing.T) {
		skip(t, "CloseTwice")
		testCloseTwice(t, open)
	})
}

// testReadAll tests reading the whole content in small pieces.
func testReadAll(t *testing.T, open Opener) {
	content := []byte("hello, world\nsecond line\n")
	f := open(t, content)
	defer closeFile(t, f)

	got, err := io.ReadAll(io.LimitReader(f, int64(len(content))+10))
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadAll(): got %q, want %q", got, content)
	}
}

// testReadAtEOF tests that reading past the content reports io.EOF.
func testReadAtEOF(t *testing.T, open Opener) {
	f := open(t, []byte("abc"))
	defer closeFile(t, f)

	buf := make([]byte, 8)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("Read(): got error %v, want nil or EOF", err)
	}
	if n != 3 {
		t.Errorf("Read(): read %d bytes, want 3", n)
	}

	n, err = f.Read(buf)
	if !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end: got error %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("Read() at end: read %d bytes, want 0", n)
	}
}

// testOverwriteInPlace tests that a write at offset 0 replaces bytes without
// changing the length.
func testOverwriteInPlace(t *testing.T, open Opener) {
	f := open(t, []byte("0123456789"))
	defer closeFile(t, f)

	n, err := f.Write([]byte("abc"))
	if err != nil {
		t.Fatalf("Write(abc): got error %v, want nil", err)
	}
	if n != 3 {
		t.Errorf("Write(abc): wrote %d bytes, want 3", n)
	}

	got := contentOf(t, f)
	if want := []byte("abc3456789"); !bytes.Equal(got, want) {
		t.Errorf("Content after Write(abc): got %q, want %q", got, want)
	}
}

// testStat tests that Stat reports the current size and the handle's name.
func testStat(t *testing.T, open Opener) {
	f := open(t, []byte("12345"))
	defer closeFile(t, f)

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if info.Size() != 5 {
		t.Errorf("Stat(): Size() = %d, want 5", info.Size())
	}
	if info.IsDir() {
		t.Errorf("Stat(): IsDir() = true, want false")
	}

	if _, err := f.Write([]byte("6789")); err != nil {
		t.Fatalf("Write(6789): got error %v, want nil", err)
	}
	info, err = f.Stat()
	if err != nil {
		t.Fatalf("Stat() after Write: got error %v, want nil", err)
	}
	if info.Size() != 5 {
		t.Errorf("Stat() after overwrite: Size() = %d, want 5", info.Size())
	}
}

// testCloseTwice tests that the second Close of a handle fails.
func testCloseTwice(t *testing.T, open Opener) {
	f := open(t, []byte("x"))
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if err := f.Close(); err == nil {
		t.Errorf("Close() twice: got nil, want error")
	}
}

// contentOf returns the full content of f through io.ReaderAt when f
// supports it, or by seeking to the start and reading.
func contentOf(t *testing.T, f core.File) []byte {
	t.Helper()

	if ra, ok := f.(io.ReaderAt); ok {
		info, err := f.Stat()
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		buf := make([]byte, info.Size())
		n, err := ra.ReadAt(buf, 0)
		if err != nil && !errors.Is(err, io.EOF) {
			t.Fatalf("ReadAt(buf, 0): got error %v, want nil or EOF", err)
		}
		return buf[:n]
	}

	seeker, ok := f.(io.Seeker)
	if !ok {
		t.Skip("content cannot be read back without io.ReaderAt or io.Seeker")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	return got
}
