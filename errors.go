// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import "errors"

var (
	// ErrInvalidEncoding is returned for malformed hex key input.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidAddress is returned when an address does not decode to a
	// 69-byte payload. The underlying base58 error, if any, is wrapped too.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnknownWord is returned when a mnemonic word is not in the word list.
	ErrUnknownWord = errors.New("unknown mnemonic word")

	// ErrInvalidSeedLength is returned for seeds that are not a positive
	// multiple of 4 bytes long.
	ErrInvalidSeedLength = errors.New("invalid seed length")

	ErrMnemonicTooShort = errors.New("mnemonic has too few words")
	ErrInvalidMnemonic  = errors.New("invalid mnemonic")
	ErrChecksumMismatch = errors.New("mnemonic checksum word mismatch")
	ErrInvalidWordList  = errors.New("invalid word list")
)
