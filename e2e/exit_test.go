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

	startDeck(t, tf)

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatalf("application did not exit: %v", err)
	}
}

func TestApplicationExitCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startDeck(t, tf)
	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(1500*time.Millisecond))
}

func TestMissingDeckFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp("missing.md"))

	require.True(t, tf.SeePlain("Error:"), "Should report the error")
	require.Error(t, tf.WaitExit(time.Second), "Should exit non-zero")
}
