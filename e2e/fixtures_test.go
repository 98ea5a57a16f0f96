//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const investorDeck = `---
title: Seed round
pagination: numbered
---
# Problem

Founders lose hours every week.

---
# Solution

One tool for everything.

---
# Market

A very big market.

---
# Traction

Growing fast.

---
# Team

Experienced founders.

---
# Ask

We are raising.
`

// startDeck writes the investor deck and starts the presenter on it
func startDeck(t *testing.T, tf *TUITestFramework, args ...string) string {
	t.Helper()
	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	path, err := tf.WriteDeck("slides.md", investorDeck)
	require.NoError(t, err, "Failed to write deck")

	require.NoError(t, tf.StartApp(append(args, "--no-fullscreen", path)...), "Failed to start app")
	require.True(t, tf.SeePlain("Founders lose hours"), "Should show the first slide")
	return path
}
