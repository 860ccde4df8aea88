package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more answers")
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

func TestGetPassword(t *testing.T) {
	stubPasswords(t, "hunter2")

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(pw))
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubPasswords(t)

	var out bytes.Buffer
	_, err := GetPassword(&out, "Password: ")
	require.Error(t, err)
}

// limitWriter fails every write after the first n.
type limitWriter struct{ n int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("write failed")
	}
	w.n--
	return len(p), nil
}

func TestGetPassword_WriteErrors(t *testing.T) {
	t.Run("prompt", func(t *testing.T) {
		stubPasswords(t, "hunter2")
		_, err := GetPassword(&limitWriter{n: 0}, "Password: ")
		require.Error(t, err)
	})

	t.Run("trailing newline", func(t *testing.T) {
		stubPasswords(t, "hunter2")
		pw, err := GetPassword(&limitWriter{n: 1}, "Password: ")
		require.EqualError(t, err, "write failed")
		assert.Nil(t, pw)
	})
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"newline", "hello world\n", "hello world", nil},
		{"crlf", "secret\r\n", "secret", nil},
		{"eof after text", "lastline", "lastline", nil},
		{"keeps inner spaces", "  pad  \n", "  pad  ", nil},
		{"empty input", "", "", io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLine(bufio.NewReader(strings.NewReader(tt.in)))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
