// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strings"
)

// SeedSize is the conventional seed length: 8 four-byte chunks, 24 data
// words and one checksum word.
const SeedSize = 32

// checksumPrefixLen is the number of leading characters of each word that
// feed the checksum.
const checksumPrefixLen = 3

// SeedToMnemonic encodes seed with the English word list.
func SeedToMnemonic(seed []byte) ([]string, error) {
	return English().SeedToMnemonic(seed)
}

// MnemonicToSeed decodes a mnemonic into a 32-byte seed with the English
// word list. See WordList.MnemonicToSeed.
func MnemonicToSeed(mnemonic string) ([]byte, error) {
	return English().MnemonicToSeed(mnemonic, SeedSize)
}

// MnemonicToSeedWithLength is MnemonicToSeed for seeds of seedLen bytes.
func MnemonicToSeedWithLength(mnemonic string, seedLen int) ([]byte, error) {
	return English().MnemonicToSeed(mnemonic, seedLen)
}

// VerifyMnemonicChecksum checks the checksum word of a 25-word mnemonic.
func VerifyMnemonicChecksum(mnemonic string) error {
	return English().VerifyChecksum(mnemonic, SeedSize)
}

// RestoreMnemonic decodes a 24 or 25 word English mnemonic into a 32-byte
// seed, verifying the checksum word when present.
func RestoreMnemonic(mnemonic string) ([]byte, error) {
	return English().Restore(mnemonic, SeedSize)
}

// ChecksumWord returns the checksum word for the given data words.
func ChecksumWord(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[checksumIndex(words)]
}

// SeedToMnemonic encodes every 4-byte little-endian chunk of seed as three
// words and appends a checksum word. The checksum word is a copy of one of
// the data words, chosen by the CRC32 of the words' three letter prefixes.
func (wl *WordList) SeedToMnemonic(seed []byte) ([]string, error) {
	if err := checkSeedLength(len(seed)); err != nil {
		return nil, err
	}

	n := uint64(len(wl.words))
	words := make([]string, 0, 3*len(seed)/4+1)
	for i := 0; i < len(seed); i += 4 {
		x := uint64(binary.LittleEndian.Uint32(seed[i:]))
		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/n/n + w2) % n
		words = append(words, wl.words[w1], wl.words[w2], wl.words[w3])
	}
	return append(words, ChecksumWord(words)), nil
}

// MnemonicToSeed decodes the first 3*seedLen/4 words of a space separated
// mnemonic into a seed of seedLen bytes. Anything after those words, such as
// the checksum word, is ignored.
func (wl *WordList) MnemonicToSeed(mnemonic string, seedLen int) ([]byte, error) {
	if err := checkSeedLength(seedLen); err != nil {
		return nil, err
	}

	words := strings.Split(mnemonic, " ")
	groups := seedLen / 4
	if len(words) < 3*groups {
		return nil, fmt.Errorf("%w: need %d words for a %d byte seed, got %d",
			ErrMnemonicTooShort, 3*groups, seedLen, len(words))
	}

	n := uint64(len(wl.words))
	seed := make([]byte, seedLen)
	for g := range groups {
		var idx [3]uint64
		for j := range idx {
			pos := 3*g + j
			i, ok := wl.Index(words[pos])
			if !ok {
				return nil, fmt.Errorf("%w: %q (word %d)", ErrUnknownWord, words[pos], pos+1)
			}
			idx[j] = uint64(i)
		}

		x := idx[0] + n*((n+idx[1]-idx[0])%n) + n*n*((n+idx[2]-idx[1])%n)
		if x > math.MaxUint32 {
			return nil, fmt.Errorf("%w: words %d to %d do not encode a 32-bit value",
				ErrInvalidMnemonic, 3*g+1, 3*g+3)
		}
		binary.LittleEndian.PutUint32(seed[4*g:], uint32(x))
	}
	return seed, nil
}

// VerifyChecksum recomputes the checksum word from the data words of a
// mnemonic for a seedLen byte seed and compares it to the word that follows
// them.
func (wl *WordList) VerifyChecksum(mnemonic string, seedLen int) error {
	if err := checkSeedLength(seedLen); err != nil {
		return err
	}

	words := strings.Split(mnemonic, " ")
	data := 3 * seedLen / 4
	if len(words) <= data {
		return fmt.Errorf("%w: no checksum word after %d data words", ErrMnemonicTooShort, data)
	}

	want := ChecksumWord(words[:data])
	if words[data] != want {
		return fmt.Errorf("%w: got %q, want %q", ErrChecksumMismatch, words[data], want)
	}
	return nil
}

// Restore decodes a mnemonic that holds exactly the data words, optionally
// followed by the checksum word, and verifies the checksum when present.
func (wl *WordList) Restore(mnemonic string, seedLen int) ([]byte, error) {
	seed, err := wl.MnemonicToSeed(mnemonic, seedLen)
	if err != nil {
		return nil, err
	}

	data := 3 * seedLen / 4
	switch n := len(strings.Split(mnemonic, " ")); {
	case n == data:
		return seed, nil
	case n == data+1:
		if err := wl.VerifyChecksum(mnemonic, seedLen); err != nil {
			return nil, err
		}
		return seed, nil
	default:
		return nil, fmt.Errorf("%w: expected %d or %d words, got %d", ErrInvalidMnemonic, data, data+1, n)
	}
}

func checkSeedLength(n int) error {
	if n <= 0 || n%4 != 0 {
		return fmt.Errorf("%w: %d bytes is not a positive multiple of 4", ErrInvalidSeedLength, n)
	}
	return nil
}

func checksumIndex(words []string) int {
	var trimmed strings.Builder
	for _, w := range words {
		trimmed.WriteString(wordPrefix(w))
	}
	return int(crc32.ChecksumIEEE([]byte(trimmed.String())) % uint32(len(words)))
}

// wordPrefix returns the first checksumPrefixLen characters of w.
func wordPrefix(w string) string {
	n := 0
	for i := range w {
		if n == checksumPrefixLen {
			return w[:i]
		}
		n++
	}
	return w
}
