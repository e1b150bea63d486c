package container

import (
	"bytes"
	"testing"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLogStream(t *testing.T) {
	t.Run("multiplexed stream is demuxed", func(t *testing.T) {
		var encoded bytes.Buffer
		_, err := stdcopy.NewStdWriter(&encoded, stdcopy.Stdout).Write([]byte("out line\n"))
		require.NoError(t, err)
		_, err = stdcopy.NewStdWriter(&encoded, stdcopy.Stderr).Write([]byte("err line\n"))
		require.NoError(t, err)

		out, err := decodeLogStream(&encoded, false)
		require.NoError(t, err)
		assert.Equal(t, "out line\nerr line\n", out)
	})

	t.Run("tty stream is read raw", func(t *testing.T) {
		out, err := decodeLogStream(bytes.NewBufferString("raw tty output\n"), true)
		require.NoError(t, err)
		assert.Equal(t, "raw tty output\n", out)
	})

	t.Run("raw stream without tty fails demuxing", func(t *testing.T) {
		_, err := decodeLogStream(bytes.NewBufferString("raw tty output\n"), false)
		require.Error(t, err)
	})
}
