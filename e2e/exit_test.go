//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--items", "100"))
	require.True(t, tf.Ready(), "Should paint the column header")
	require.True(t, tf.SeePlain("Files Section 1"), "Should show the title")

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(2 * time.Second); err != nil {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal(err)
	}
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--items", "100"))
	require.True(t, tf.Ready(), "Should paint the column header")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(2*time.Second))
}
