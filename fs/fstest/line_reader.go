package fstest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/memio/fs/core"
)

// TestLineReader tests the core.LineReader capability.
// Uses DefaultConfig() by default.
func TestLineReader(t *testing.T, open Opener) {
	TestLineReaderWithConfig(t, open, DefaultConfig())
}

// TestLineReaderWithConfig tests line reading with behavior configuration.
func TestLineReaderWithConfig(t *testing.T, open Opener, config Config) {
	skip := skipper("LineReader", config)

	t.Run("Gets", func(t *testing.T) {
		skip(t, "Gets")
		testGets(t, open)
	})
	t.Run("Getc", func(t *testing.T) {
		skip(t, "Getc")
		testGetc(t, open)
	})
	t.Run("MixedWithRead", func(t *testing.T) {
		skip(t, "MixedWithRead")
		testGetsMixedWithRead(t, open)
	})
}

func lineReader(t *testing.T, f core.File) core.LineReader {
	t.Helper()
	lr, ok := f.(core.LineReader)
	if !ok {
		t.Skip("core.LineReader not supported by this file implementation")
	}
	return lr
}

// testGets tests that Gets returns newline-terminated chunks and counts them.
func testGets(t *testing.T, open Opener) {
	f := open(t, []byte("first\nsecond\nlast"))
	defer closeFile(t, f)
	lr := lineReader(t, f)

	want := []string{"first\n", "second\n", "last"}
	for i, w := range want {
		line, err := lr.Gets()
		if err != nil {
			t.Fatalf("Gets() #%d: got error %v, want nil", i+1, err)
		}
		if string(line) != w {
			t.Errorf("Gets() #%d: got %q, want %q", i+1, line, w)
		}
		if lr.Lineno() != i+1 {
			t.Errorf("Lineno() after Gets() #%d: got %d, want %d", i+1, lr.Lineno(), i+1)
		}
	}

	if _, err := lr.Gets(); !errors.Is(err, io.EOF) {
		t.Errorf("Gets() at end: got error %v, want io.EOF", err)
	}
	if lr.Lineno() != len(want) {
		t.Errorf("Lineno() after Gets() at end: got %d, want %d", lr.Lineno(), len(want))
	}
}

// testGetc tests byte-wise reading.
func testGetc(t *testing.T, open Opener) {
	f := open(t, []byte("ab"))
	defer closeFile(t, f)
	lr := lineReader(t, f)

	for _, want := range []byte("ab") {
		c, err := lr.Getc()
		if err != nil {
			t.Fatalf("Getc(): got error %v, want nil", err)
		}
		if c != want {
			t.Errorf("Getc(): got %q, want %q", c, want)
		}
	}
	if _, err := lr.Getc(); !errors.Is(err, io.EOF) {
		t.Errorf("Getc() at end: got error %v, want io.EOF", err)
	}
}

// testGetsMixedWithRead tests that Gets and Read share one position.
func testGetsMixedWithRead(t *testing.T, open Opener) {
	f := open(t, []byte("one\ntwo\nthree\n"))
	defer closeFile(t, f)
	lr := lineReader(t, f)

	if _, err := lr.Gets(); err != nil {
		t.Fatalf("Gets(): got error %v, want nil", err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatalf("ReadFull(): got error %v, want nil", err)
	}
	if !bytes.Equal(buf, []byte("two\n")) {
		t.Errorf("Read() after Gets(): got %q, want %q", buf, "two\n")
	}
	line, err := lr.Gets()
	if err != nil {
		t.Fatalf("Gets() after Read(): got error %v, want nil", err)
	}
	if string(line) != "three\n" {
		t.Errorf("Gets() after Read(): got %q, want %q", line, "three\n")
	}
}
