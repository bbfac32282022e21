package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferedReader(t *testing.T) {
	out := &bytes.Buffer{}
	reader := NewBufferedReader(strings.NewReader("first\nlast"), out)

	line, err := reader.ReadLine("1> ")
	assert.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = reader.ReadLine("2> ")
	assert.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = reader.ReadLine("3> ")
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, "1> 2> 3> ", out.String())
	assert.NoError(t, reader.Close())
}
