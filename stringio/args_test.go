package stringio

import (
	"io"
	"math"
	"testing"

	"github.com/jmgilman/go/memio/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGetsArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		want     GetsCall
		wantCode errors.ErrorCode
	}{
		{name: "no arguments", args: nil, want: GetsCall{Sep: LineSeparator}},
		{name: "string separator", args: []any{">"}, want: GetsCall{Sep: Sep(">")}},
		{name: "byte separator", args: []any{[]byte(">>")}, want: GetsCall{Sep: Sep(">>")}},
		{name: "empty separator", args: []any{""}, want: GetsCall{Sep: ParagraphSeparator}},
		{name: "nil separator", args: []any{nil}, want: GetsCall{Sep: NoSeparator}},
		{name: "separator value", args: []any{NoSeparator}, want: GetsCall{Sep: NoSeparator}},
		{name: "limit only", args: []any{3}, want: GetsCall{Sep: LineSeparator, Limit: 3, LimitOnly: true}},
		{name: "int64 limit", args: []any{int64(2)}, want: GetsCall{Sep: LineSeparator, Limit: 2, LimitOnly: true}},
		{name: "separator and limit", args: []any{">", 2}, want: GetsCall{Sep: Sep(">"), Limit: 2}},
		{name: "separator and nil limit", args: []any{"", nil}, want: GetsCall{Sep: ParagraphSeparator}},
		{name: "integer separator with limit", args: []any{1, 1}, wantCode: errors.CodeTypeMismatch},
		{name: "non integer limit", args: []any{">", "x"}, wantCode: errors.CodeTypeMismatch},
		{name: "float argument", args: []any{3.5}, wantCode: errors.CodeTypeMismatch},
		{name: "limit out of range", args: []any{uint64(math.MaxUint64)}, wantCode: errors.CodeInvalidArgument},
		{name: "too many arguments", args: []any{">", 1, 2}, wantCode: errors.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetsArgs(tt.args...)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetsWith(t *testing.T) {
	s := mustNew(t, "a>b\nc")

	call := func(args ...any) string {
		t.Helper()
		c, err := ParseGetsArgs(args...)
		require.NoError(t, err)
		line, err := s.GetsWith(c)
		require.NoError(t, err)
		return string(line)
	}

	assert.Equal(t, "a>", call(">"))
	assert.Equal(t, "b", call(1))
	assert.Equal(t, "", call(0))
	assert.Equal(t, "\nc", call(nil))

	c, err := ParseGetsArgs()
	require.NoError(t, err)
	_, err = s.GetsWith(c)
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseReadArgs(t *testing.T) {
	dst := []byte{}

	tests := []struct {
		name     string
		args     []any
		want     ReadCall
		wantCode errors.ErrorCode
	}{
		{name: "no arguments", args: nil, want: ReadCall{}},
		{name: "nil length", args: []any{nil}, want: ReadCall{}},
		{name: "length", args: []any{4}, want: ReadCall{Length: 4, HasLength: true}},
		{name: "length and destination", args: []any{4, &dst}, want: ReadCall{Length: 4, HasLength: true, Dest: &dst}},
		{name: "nil length and destination", args: []any{nil, &dst}, want: ReadCall{Dest: &dst}},
		{name: "string length", args: []any{"4"}, wantCode: errors.CodeTypeMismatch},
		{name: "bad destination", args: []any{1, "buf"}, wantCode: errors.CodeTypeMismatch},
		{name: "too many arguments", args: []any{1, nil, nil}, wantCode: errors.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReadArgs(tt.args...)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadWith(t *testing.T) {
	s := mustNew(t, "abcdef")
	var dst []byte

	c, err := ParseReadArgs(2, &dst)
	require.NoError(t, err)
	got, err := s.ReadWith(c)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(got))
	assert.Equal(t, "ab", string(dst))

	c, err = ParseReadArgs()
	require.NoError(t, err)
	got, err = s.ReadWith(c)
	require.NoError(t, err)
	assert.Equal(t, "cdef", string(got))

	c, err = ParseReadArgs(-1)
	require.NoError(t, err)
	_, err = s.ReadWith(c)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidArgument))
}
