package stringio

import (
	"bytes"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, content string, opts ...Option) *StringIO {
	t.Helper()
	s, err := NewString(content, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	t.Run("nil buffer", func(t *testing.T) {
		s, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, ReadWrite, s.Flags())
		assert.Equal(t, "", s.String())
		assert.Equal(t, 1, s.Buffer().RefCount())
	})

	t.Run("attaches caller buffer", func(t *testing.T) {
		buf := store.NewString("foo")
		s, err := New(buf, WithMode("w"))
		require.NoError(t, err)
		assert.Same(t, buf, s.Buffer())
		assert.Equal(t, "", buf.String(), "w truncates")

		n, err := s.WriteString("foo")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, "foo", buf.String())
	})

	t.Run("frozen defaults to read-only", func(t *testing.T) {
		s, err := New(store.NewString("const").Freeze())
		require.NoError(t, err)
		assert.Equal(t, Readable, s.Flags())

		got, err := s.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "const", string(got))
	})

	t.Run("writable mode over frozen content", func(t *testing.T) {
		for _, mode := range []string{"w", "a", "r+", "w+"} {
			buf := store.NewString("const").Freeze()
			_, err := New(buf, WithMode(mode))
			require.Error(t, err, mode)
			assert.Equal(t, errors.CodeAccess, errors.GetCode(err), mode)
			assert.ErrorIs(t, err, fs.ErrPermission)
			assert.Equal(t, "const", buf.String())
			assert.Zero(t, buf.RefCount())
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := NewString("x", WithMode("rw"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    Flag
		wantErr bool
	}{
		{mode: "r", want: Readable},
		{mode: "r+", want: ReadWrite},
		{mode: "w", want: Writable | Create | Trunc},
		{mode: "w+", want: ReadWrite | Create | Trunc},
		{mode: "a", want: Writable | Append | Create},
		{mode: "a+", want: ReadWrite | Append | Create},
		{mode: "rb", want: Readable | Binmode},
		{mode: "r+b", want: ReadWrite | Binmode},
		{mode: "", wantErr: true},
		{mode: "x", wantErr: true},
		{mode: "r-", wantErr: true},
		{mode: "+r", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := ParseMode(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.CodeInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlag_String(t *testing.T) {
	assert.Equal(t, "READABLE|WRITABLE", ReadWrite.String())
	assert.Equal(t, "WRITABLE|APPEND|CREATE", (Writable | Append | Create).String())
	assert.Equal(t, "CLOSED", Flag(0).String())
}

func TestUninitialized(t *testing.T) {
	var s StringIO

	calls := map[string]func() error{
		"ReadAll":   func() error { _, err := s.ReadAll(); return err },
		"ReadN":     func() error { _, err := s.ReadN(1); return err },
		"Read":      func() error { _, err := s.Read(make([]byte, 1)); return err },
		"Write":     func() error { _, err := s.Write([]byte("x")); return err },
		"Getc":      func() error { _, err := s.Getc(); return err },
		"Gets":      func() error { _, err := s.Gets(); return err },
		"Seek":      func() error { _, err := s.Seek(0, 0); return err },
		"SetPos":    func() error { return s.SetPos(1) },
		"SetLineno": func() error { return s.SetLineno(1) },
		"Rewind":    func() error { return s.Rewind() },
		"Size":      func() error { _, err := s.Size(); return err },
		"EOF":       func() error { _, err := s.EOF(); return err },
		"Close":     func() error { return s.Close() },
		"Dup":       func() error { _, err := s.Dup(); return err },
		"Reopen":    func() error { return s.Reopen([]byte("x")) },
		"Release":   func() error { return s.Release() },
		"Stat":      func() error { _, err := s.Stat(); return err },
		"Truncate":  func() error { return s.Truncate(0) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.Equal(t, errors.CodeUninitialized, errors.GetCode(err))
		})
	}

	// Infallible accessors report the zero state.
	assert.True(t, s.Closed())
	assert.Nil(t, s.Buffer())
	assert.Nil(t, s.Bytes())
	assert.Equal(t, "", s.String())
	assert.Equal(t, int64(0), s.Pos())
	assert.Equal(t, 0, s.Lineno())
	assert.Equal(t, Flag(0), s.Flags())
	assert.Equal(t, "", s.Name())
}

func TestClose(t *testing.T) {
	s := mustNew(t, "")
	assert.False(t, s.Closed())

	require.NoError(t, s.Close())
	assert.True(t, s.Closed())

	err := s.Close()
	require.Error(t, err)
	assert.Equal(t, errors.CodeIOState, errors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrClosed)

	_, err = s.ReadAll()
	assert.True(t, errors.HasCode(err, errors.CodeIOState))
	assert.Contains(t, err.Error(), "not opened for reading")

	_, err = s.Write(nil)
	assert.True(t, errors.HasCode(err, errors.CodeIOState))
	assert.Contains(t, err.Error(), "not opened for writing")

	_, err = s.Seek(0, 0)
	assert.True(t, errors.HasCode(err, errors.CodeIOState))
	assert.Contains(t, err.Error(), "closed stream")
}

func TestCloseReadWrite(t *testing.T) {
	s := mustNew(t, "abc")

	require.NoError(t, s.CloseRead())
	assert.False(t, s.Closed())
	_, err := s.Getc()
	assert.True(t, errors.HasCode(err, errors.CodeIOState))
	assert.True(t, errors.HasCode(s.CloseRead(), errors.CodeIOState))

	_, err = s.WriteString("x")
	require.NoError(t, err)

	require.NoError(t, s.CloseWrite())
	assert.True(t, s.Closed())
	assert.True(t, errors.HasCode(s.CloseWrite(), errors.CodeIOState))
}

func TestOpen(t *testing.T) {
	buf := store.NewString("foo")
	var seen *StringIO

	s, err := Open(buf, func(io *StringIO) error {
		seen = io
		got, err := io.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "foo", string(got))
		return nil
	})
	require.NoError(t, err)

	assert.Same(t, seen, s)
	assert.True(t, s.Closed())
	assert.Nil(t, s.Buffer())
	assert.True(t, buf.Released())
	assert.Equal(t, "foo", buf.String())
}

func TestOpen_CallbackClosesAndFails(t *testing.T) {
	boom := errors.New(errors.CodeUnknown, "boom")

	s, err := Open(nil, func(io *StringIO) error {
		require.NoError(t, io.Close())
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, s.Closed())
}

func TestDup_SharesContentNotCursor(t *testing.T) {
	a := mustNew(t, "hello")
	b, err := a.Dup()
	require.NoError(t, err)

	assert.Same(t, a.Buffer(), b.Buffer())
	assert.Equal(t, 2, a.Buffer().RefCount())

	_, err = b.WriteString("X")
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.Pos())
	assert.Equal(t, int64(0), a.Pos())

	got, err := a.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Xello", string(got))
	assert.Equal(t, int64(1), b.Pos())
}

func TestDup_InheritsCursorAndFlags(t *testing.T) {
	a := mustNew(t, "a\nb\n", WithMode("r"), WithName("lines"))
	_, err := a.Gets()
	require.NoError(t, err)

	b, err := a.Dup()
	require.NoError(t, err)
	assert.Equal(t, a.Pos(), b.Pos())
	assert.Equal(t, 1, b.Lineno())
	assert.Equal(t, Readable, b.Flags())
	assert.Equal(t, "lines", b.Name())

	require.NoError(t, b.Close())
	assert.False(t, a.Closed(), "closing a dup leaves the original open")
}

func TestRelease(t *testing.T) {
	a := mustNew(t, "data")
	buf := a.Buffer()
	b, err := a.Dup()
	require.NoError(t, err)

	require.NoError(t, a.Release())
	assert.False(t, buf.Released())
	assert.Equal(t, 1, buf.RefCount())
	assert.True(t, a.Closed())

	_, err = a.ReadAll()
	assert.True(t, errors.HasCode(err, errors.CodeUninitialized))

	got, err := b.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	require.NoError(t, b.Release())
	assert.True(t, buf.Released())
}

func TestReopen_ReplacesSharedContent(t *testing.T) {
	a := mustNew(t, "old content")
	b, err := a.Dup()
	require.NoError(t, err)
	_, err = a.Seek(4, 0)
	require.NoError(t, err)
	require.NoError(t, a.SetLineno(3))

	require.NoError(t, a.Reopen([]byte("new"), WithMode("r")))

	assert.Equal(t, int64(0), a.Pos())
	assert.Equal(t, 0, a.Lineno())
	assert.Equal(t, Readable, a.Flags())
	assert.Same(t, a.Buffer(), b.Buffer())
	assert.Equal(t, "new", b.String())
	assert.Equal(t, ReadWrite, b.Flags())
}

func TestReopen_InvalidModeLeavesContent(t *testing.T) {
	s := mustNew(t, "keep")
	err := s.Reopen([]byte("lost"), WithMode("q"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	assert.Equal(t, "keep", s.String())
}

func TestReopen_FrozenBufferDetaches(t *testing.T) {
	frozen := store.NewString("const").Freeze()
	a, err := New(frozen)
	require.NoError(t, err)
	b, err := a.Dup()
	require.NoError(t, err)

	require.NoError(t, a.Reopen([]byte("fresh")))

	assert.NotSame(t, frozen, a.Buffer())
	assert.Equal(t, "fresh", a.String())
	assert.Equal(t, ReadWrite, a.Flags())
	assert.Equal(t, "const", b.String())
	assert.Equal(t, 1, frozen.RefCount())
}

func TestReopenFrom(t *testing.T) {
	a := mustNew(t, "shared")
	_, err := a.Seek(2, 0)
	require.NoError(t, err)

	b := mustNew(t, "other")
	old := b.Buffer()
	require.NoError(t, b.ReopenFrom(a))

	assert.Same(t, a.Buffer(), b.Buffer())
	assert.Equal(t, int64(2), b.Pos())
	assert.True(t, old.Released())
	assert.Equal(t, 2, a.Buffer().RefCount())

	var zero StringIO
	require.NoError(t, zero.ReopenFrom(a))
	assert.Equal(t, 3, a.Buffer().RefCount())

	assert.True(t, errors.HasCode(b.ReopenFrom(nil), errors.CodeInvalidArgument))
	assert.True(t, errors.HasCode(b.ReopenFrom(&StringIO{}), errors.CodeUninitialized))
}

func TestStat(t *testing.T) {
	s := mustNew(t, "1234", WithName("mem/data.txt"), WithMode("r"))
	fi, err := s.Stat()
	require.NoError(t, err)

	assert.Equal(t, "data.txt", fi.Name())
	assert.Equal(t, int64(4), fi.Size())
	assert.Equal(t, fs.FileMode(0444), fi.Mode())
	require.NoError(t, s.Sync())
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := mustNew(t, "x", WithLogger(logger), WithName("logged"))
	require.NoError(t, s.Close())
	require.NoError(t, s.Release())

	logs := out.String()
	assert.Contains(t, logs, "buffer attached")
	assert.Contains(t, logs, "stream closed")
	assert.Contains(t, logs, "buffer released")
	assert.Contains(t, logs, "name=logged")
}
