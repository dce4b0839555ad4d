package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecPassesArgsAndCode(t *testing.T) {
	var got []string
	code := Exec(func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		require.NoError(t, ctx.Err())
		got = argv
		return 2
	}, []string{"-p", "bob"}, io.Discard, io.Discard)

	require.Equal(t, 2, code)
	require.Equal(t, []string{"-p", "bob"}, got)
}
