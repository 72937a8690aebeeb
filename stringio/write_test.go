package stringio

import (
	"io"
	"io/fs"
	"math"
	"testing"

	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Modes(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		mode    string
		seek    int64
		writes  []string
		want    string
		wantPos int64
	}{
		{
			name:    "w truncates the caller buffer",
			initial: "foo",
			mode:    "w",
			writes:  []string{"bar"},
			want:    "bar",
			wantPos: 3,
		},
		{
			name:    "a appends to the caller buffer",
			initial: "foo",
			mode:    "a",
			writes:  []string{"bar", "baz"},
			want:    "foobarbaz",
			wantPos: 9,
		},
		{
			name:    "a ignores the position",
			initial: "foo",
			mode:    "a",
			seek:    1,
			writes:  []string{"!"},
			want:    "foo!",
			wantPos: 4,
		},
		{
			name:    "r+ overwrites in place",
			initial: "abcdef",
			mode:    "r+",
			seek:    2,
			writes:  []string{"XY"},
			want:    "abXYef",
			wantPos: 4,
		},
		{
			name:    "overwrite extends past the end",
			initial: "abc",
			mode:    "r+",
			seek:    2,
			writes:  []string{"XYZ"},
			want:    "abXYZ",
			wantPos: 5,
		},
		{
			name:    "write past the end zero-fills",
			initial: "ab",
			mode:    "w+",
			seek:    3,
			writes:  []string{"c"},
			want:    "\x00\x00\x00c",
			wantPos: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := store.NewString(tt.initial)
			s, err := New(buf, WithMode(tt.mode))
			require.NoError(t, err)

			_, err = s.Seek(tt.seek, io.SeekStart)
			require.NoError(t, err)
			for _, w := range tt.writes {
				n, err := s.WriteString(w)
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.wantPos, s.Pos())
		})
	}
}

func TestWrite_SeekPastEOF(t *testing.T) {
	s := mustNew(t, "ab")

	_, err := s.Seek(5, io.SeekStart)
	require.NoError(t, err)
	_, err = s.WriteString("c")
	require.NoError(t, err)

	assert.Equal(t, []byte("ab\x00\x00\x00c"), s.Bytes())
	assert.Equal(t, int64(6), s.Pos())
}

func TestWrite_Empty(t *testing.T) {
	s := mustNew(t, "abc")

	n, err := s.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, int64(0), s.Pos())

	ro := mustNew(t, "abc", WithMode("r"))
	_, err = ro.Write(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeIOState, errors.GetCode(err))
}

func TestWrite_Frozen(t *testing.T) {
	s := mustNew(t, "abc")
	s.Buffer().Freeze()

	for _, p := range [][]byte{[]byte("x"), nil} {
		_, err := s.Write(p)
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotModifiable, errors.GetCode(err))
		assert.ErrorIs(t, err, fs.ErrPermission)
	}
	assert.Equal(t, "abc", s.String())

	err := s.Truncate(0)
	assert.True(t, errors.HasCode(err, errors.CodeNotModifiable))

	fi, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0444), fi.Mode())
}

func TestWrite_AliasesObserveWrites(t *testing.T) {
	a := mustNew(t, "")
	b, err := a.Dup()
	require.NoError(t, err)

	_, err = a.WriteString("shared")
	require.NoError(t, err)

	got, err := b.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "shared", string(got))
}

func TestPrintAndPuts(t *testing.T) {
	tests := []struct {
		name  string
		write func(s *StringIO) (int, error)
		want  string
	}{
		{
			name:  "print concatenates",
			write: func(s *StringIO) (int, error) { return s.Print("x", 42, []byte("y"), nil) },
			want:  "x42y",
		},
		{
			name:  "puts without arguments",
			write: func(s *StringIO) (int, error) { return s.Puts() },
			want:  "\n",
		},
		{
			name:  "puts adds missing newlines",
			write: func(s *StringIO) (int, error) { return s.Puts("a", "b\n", 3) },
			want:  "a\nb\n3\n",
		},
		{
			name:  "puts stringer",
			write: func(s *StringIO) (int, error) { return s.Puts(Sep(">")) },
			want:  ">\n",
		},
		{
			name:  "write value",
			write: func(s *StringIO) (int, error) { return s.WriteValue(3.5) },
			want:  "3.5",
		},
		{
			name:  "write nil value",
			write: func(s *StringIO) (int, error) { return s.WriteValue(nil) },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, "")
			n, err := tt.write(s)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestWriteAt(t *testing.T) {
	s := mustNew(t, "0123")

	n, err := s.WriteAt([]byte("ab"), 6)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("0123\x00\x00ab"), s.Bytes())
	assert.Equal(t, int64(0), s.Pos())

	_, err = s.WriteAt([]byte("x"), -1)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidArgument))

	a := mustNew(t, "", WithMode("a"))
	_, err = a.WriteAt([]byte("x"), 0)
	require.Error(t, err)
	assert.Equal(t, errors.CodeIOState, errors.GetCode(err))
	assert.Contains(t, err.Error(), "positional write in append mode")
}

func TestTruncate(t *testing.T) {
	s := mustNew(t, "abcdef")
	_, err := s.Seek(4, io.SeekStart)
	require.NoError(t, err)

	require.NoError(t, s.Truncate(2))
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, int64(4), s.Pos())

	require.NoError(t, s.Truncate(4))
	assert.Equal(t, "ab\x00\x00", s.String())

	assert.True(t, errors.HasCode(s.Truncate(-1), errors.CodeInvalidArgument))
}

func TestWrite_OffsetBeyondLimit(t *testing.T) {
	s := mustNew(t, "abc")

	_, err := s.Seek(math.MaxInt64, io.SeekStart)
	require.NoError(t, err)

	n, err := s.Write([]byte("x"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	assert.Zero(t, n)
	assert.Equal(t, int64(math.MaxInt64), s.Pos())
	assert.Equal(t, "abc", s.String())

	_, err = s.WriteAt([]byte("x"), store.MaxLen)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidArgument))
}

func TestTruncate_BeyondLimit(t *testing.T) {
	s := mustNew(t, "abc")

	for _, size := range []int64{store.MaxLen + 1, math.MaxInt64} {
		err := s.Truncate(size)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
		assert.Equal(t, "abc", s.String())
	}
}
