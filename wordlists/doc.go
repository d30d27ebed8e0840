// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package wordlists holds the static word lists used to encode wallet seeds
// as mnemonic phrases. Lists are ordered; a word's position is its value.
package wordlists
