package encoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single line no terminator", "abc", "abc"},
		{"single line with terminator", "abc\n", "abc"},
		{"two lines", "abc\ndef\n", "abcdef"},
		{"crlf terminators", "abc\r\ndef\r\n", "abcdef"},
		{"blank lines collapse", "a\n\nb\n", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringBody([]byte(tt.input)))
		})
	}
}

func TestWriteStringHeader(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.h")
	require.NoError(t, os.WriteFile(input, []byte("abc\ndef\n"), 0644))

	err := WriteStringHeader(Request{InputPath: input, OutputPath: output, ArrayName: "myText"})
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "#pragma once\n\n" +
		`static const char myText[] = R"(abcdef)";`
	assert.Equal(t, want, string(got))
}

func TestWriteStringHeaderErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello\n"), 0644))

	t.Run("same name", func(t *testing.T) {
		err := WriteStringHeader(Request{InputPath: input, OutputPath: input, ArrayName: "data"})
		assert.ErrorIs(t, err, ErrSameName)
	})

	t.Run("missing input", func(t *testing.T) {
		err := WriteStringHeader(Request{
			InputPath:  filepath.Join(dir, "nope.txt"),
			OutputPath: filepath.Join(dir, "out.h"),
			ArrayName:  "data",
		})
		assert.ErrorIs(t, err, ErrOpenInput)
	})

	t.Run("invalid array name", func(t *testing.T) {
		err := WriteStringHeader(Request{
			InputPath:  input,
			OutputPath: filepath.Join(dir, "out.h"),
			ArrayName:  "bad name",
		})
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}
