package driver

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "one case per line",
			input:    "3\n1\n3\n26\n",
			expected: "3\n10\n92\n",
		},
		{
			name:     "tokens on one line",
			input:    "4 0 9 27 1000",
			expected: "0\n33\n108\n4890\n",
		},
		{
			name:     "mixed whitespace",
			input:    "2\r\n\t8   \n\n1000000000\n",
			expected: "26\n8885957043\n",
		},
		{
			name:     "zero cases",
			input:    "0\n",
			expected: "",
		},
		{
			name:     "extra input is ignored",
			input:    "1\n4\n99\n",
			expected: "13\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		var out bytes.Buffer
		err := Run(strings.NewReader(""), &out)
		assert.ErrorIs(t, err, ErrMissingCount)
		assert.Empty(t, out.String())
	})

	t.Run("non-integer count", func(t *testing.T) {
		var out bytes.Buffer
		err := Run(strings.NewReader("abc\n1\n"), &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("fewer quantities than cases keeps earlier results", func(t *testing.T) {
		var out bytes.Buffer
		err := Run(strings.NewReader("3\n1\n3\n"), &out)
		assert.ErrorIs(t, err, ErrMissingQuantity)
		assert.Contains(t, err.Error(), "case 3 of 3")
		assert.Equal(t, "3\n10\n", out.String())
	})

	t.Run("non-integer quantity", func(t *testing.T) {
		var out bytes.Buffer
		err := Run(strings.NewReader("2\n1\nx\n"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"x"`)
		assert.Equal(t, "3\n", out.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_WriteError(t *testing.T) {
	err := Run(strings.NewReader("1\n1\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_SameInputSameOutput(t *testing.T) {
	var b strings.Builder
	b.WriteString("500\n")
	for i := 0; i < 500; i++ {
		b.WriteString(strconv.Itoa(i * 7919))
		b.WriteByte('\n')
	}
	input := b.String()

	var first, second bytes.Buffer
	require.NoError(t, Run(strings.NewReader(input), &first))
	require.NoError(t, Run(strings.NewReader(input), &second))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 500, strings.Count(first.String(), "\n"))
}
