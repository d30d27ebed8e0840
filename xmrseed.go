// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package xmrseed derives and encodes Monero wallet key material.
//
// It covers the three formats a wallet needs to agree on bit for bit with
// other CryptoNote software:
//
//   - keys: the private view key is Keccak256(spend) mod L and public keys
//     are scalar multiples of the ed25519 base point;
//   - mnemonics: a 32-byte seed is written as 24 words from a 1626-word list
//     plus one checksum word;
//   - addresses: network byte, public spend key, public view key and a
//     4-byte Keccak checksum, encoded with block base58.
//
// Wallets can also be derived deterministically from an ed25519 private key
// such as an SSH key, which is what the xmrseed command does.
package xmrseed

import (
	"crypto/ed25519"
	"crypto/sha256"
	"strings"
)

// combineSeedPassphrase combines a seed passphrase with the SSH key seed to create
// combined entropy. The passphrase is hashed with SHA256 to produce 32 bytes,
// which are then XORed with the key seed to combine the entropy deterministically.
func combineSeedPassphrase(keySeed []byte, seedPassphrase string) []byte {
	passphraseHash := sha256.Sum256([]byte(seedPassphrase))

	combined := make([]byte, len(keySeed))
	for i := range keySeed {
		combined[i] = keySeed[i] ^ passphraseHash[i]
	}

	return combined
}

// KeyPairFromEd25519 derives a wallet from an ed25519 private key.
//
// The 32-byte key seed is used as the wallet seed, reduced modulo the group
// order to obtain a canonical spend key. If seedPassphrase is non-empty it is
// mixed into the seed first, so one SSH key can back several wallets.
func KeyPairFromEd25519(key *ed25519.PrivateKey, seedPassphrase string) *KeyPair {
	seed := key.Seed()
	if seedPassphrase != "" {
		seed = combineSeedPassphrase(seed, seedPassphrase)
	}

	var s [SeedSize]byte
	copy(s[:], seed)
	return NewKeyPairFromSeed(s)
}

// ToMnemonic returns the 25-word mnemonic of the wallet derived from key.
// Restoring the phrase in any Monero wallet yields the same addresses as
// KeyPairFromEd25519.
func ToMnemonic(key *ed25519.PrivateKey, seedPassphrase string) (string, error) {
	words, err := KeyPairFromEd25519(key, seedPassphrase).Mnemonic()
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}
