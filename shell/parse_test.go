package shell

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple command",
			input: "run foo.bin\n",
			want:  []string{"run", "foo.bin"},
		},
		{
			name:  "command word lower-cased, arguments untouched",
			input: "COPY Old.txt New.TXT\n",
			want:  []string{"copy", "Old.txt", "New.TXT"},
		},
		{
			name:  "leading, trailing and repeated spaces",
			input: "  RUN   foo.bin  \n",
			want:  []string{"run", "foo.bin"},
		},
		{
			name:  "empty line",
			input: "\n",
			want:  []string{},
		},
		{
			name:  "all spaces",
			input: "      \n",
			want:  []string{},
		},
		{
			name:  "full buffer",
			input: "copy a b c\n",
			want:  []string{"copy", "a", "b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, _ := newTestShell(tt.input)
			argv, err := sh.parse()
			assert.Nil(t, err)
			assert.Equal(t, tt.want, argv)
		})
	}
}

func TestParse_ExtraParametersDropped(t *testing.T) {
	sh, _ := newTestShell("a b c d e f\nnext line here\n")

	// Six tokens: the first four are kept, the rest of the physical line is
	// consumed and dropped without an error.
	argv, err := sh.parse()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, argv)

	argv, err = sh.parse()
	assert.Nil(t, err)
	assert.Equal(t, []string{"next", "line", "here"}, argv)
}

func TestParse_ParamTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxParamLength+1)
	sh, _ := newTestShell(long + " tail\nfresh input\n")

	argv, err := sh.parse()
	assert.Nil(t, argv)
	tooLong, ok := err.(*ParamTooLongError)
	assert.True(t, ok)
	assert.Equal(t, 0, tooLong.Param)
	assert.Equal(t, MaxParamLength, tooLong.Limit)

	// The remainder of the overflowing line is gone.
	argv, err = sh.parse()
	assert.Nil(t, err)
	assert.Equal(t, []string{"fresh", "input"}, argv)
}

func TestParse_ArgumentTooLong(t *testing.T) {
	long := strings.Repeat("y", MaxParamLength+1)
	sh, _ := newTestShell("run " + long + "\n")

	_, err := sh.parse()
	tooLong, ok := err.(*ParamTooLongError)
	assert.True(t, ok)
	assert.Equal(t, 1, tooLong.Param)
}

func TestParse_MaxLengthParameterFits(t *testing.T) {
	exact := strings.Repeat("z", MaxParamLength)
	sh, _ := newTestShell(exact + "\n")

	argv, err := sh.parse()
	assert.Nil(t, err)
	assert.Equal(t, []string{exact}, argv)
}

func TestParse_EOF(t *testing.T) {
	// A final line without a trailing newline still parses.
	sh, _ := newTestShell("run foo")

	argv, err := sh.parse()
	assert.Nil(t, err)
	assert.Equal(t, []string{"run", "foo"}, argv)

	_, err = sh.parse()
	assert.Equal(t, io.EOF, err)
}
