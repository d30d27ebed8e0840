// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// KeySize is the length in bytes of private and public keys.
const KeySize = 32

// PrivateKey is a little-endian ed25519 scalar. It is not required to be
// reduced modulo the group order; reduction happens when a public key is
// derived from it.
type PrivateKey [KeySize]byte

// PublicKey is a compressed ed25519 point, always scalar times the base point.
type PublicKey [KeySize]byte

func (k PrivateKey) String() string { return hex.EncodeToString(k[:]) }

func (k PublicKey) String() string { return hex.EncodeToString(k[:]) }

// Canonical reports whether k is already reduced modulo the group order.
func (k PrivateKey) Canonical() bool {
	_, err := edwards25519.NewScalar().SetCanonicalBytes(k[:])
	return err == nil
}

// PrivateKeyFromScalar returns the 32-byte little-endian encoding of s.
func PrivateKeyFromScalar(s *uint256.Int) PrivateKey {
	var k PrivateKey
	for i, limb := range *s {
		binary.LittleEndian.PutUint64(k[8*i:], limb)
	}
	return k
}

// PrivateKeyFromHex decodes a 64 character hex string. The bytes are taken
// literally, no reduction is applied.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	var k PrivateKey
	if len(s) != hex.EncodedLen(KeySize) {
		return k, fmt.Errorf("%w: private key must be %d hex characters, got %d",
			ErrInvalidEncoding, hex.EncodedLen(KeySize), len(s))
	}
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return k, nil
}

// PrivateKeyFromBytes copies a 32-byte slice into a PrivateKey.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidEncoding, KeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// PublicKeyFromScalar returns s·G. The scalar is reduced modulo the group
// order first, so every 256-bit value is accepted.
func PublicKeyFromScalar(s *uint256.Int) PublicKey {
	return publicKey(reduce(PrivateKeyFromScalar(s)))
}

// PublicKeyFromPrivateKey reduces k modulo the group order and returns the
// matching public key. It is defined for any 32-byte input.
func PublicKeyFromPrivateKey(k PrivateKey) PublicKey {
	return publicKey(reduce(k))
}

// PrivateViewKey derives the private view key from a private spend key as
// Keccak256(spend) mod L.
func PrivateViewKey(spend PrivateKey) PrivateKey {
	return ReducePrivateKey(keccak256(spend[:]))
}

// ReducePrivateKey returns k modulo the group order (sc_reduce32).
func ReducePrivateKey(k PrivateKey) PrivateKey {
	var out PrivateKey
	copy(out[:], reduce(k).Bytes())
	return out
}

func reduce(k [KeySize]byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], k[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only rejects inputs that are not 64 bytes long.
		panic(err)
	}
	return s
}

func publicKey(s *edwards25519.Scalar) PublicKey {
	var pk PublicKey
	copy(pk[:], edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes())
	return pk
}

// keccak256 is the original Keccak-256, not NIST SHA3-256.
func keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}

// KeyPair holds a wallet's private spend and view keys.
type KeyPair struct {
	SpendKey PrivateKey
	ViewKey  PrivateKey
}

// NewKeyPair derives the view key from spend.
func NewKeyPair(spend PrivateKey) *KeyPair {
	return &KeyPair{
		SpendKey: spend,
		ViewKey:  PrivateViewKey(spend),
	}
}

// NewKeyPairFromSeed reduces a 32-byte seed into a canonical spend key and
// derives the view key from it, the way wallets do when creating or restoring
// from a mnemonic. For seeds already below the group order this is the same
// as NewKeyPair.
func NewKeyPairFromSeed(seed [SeedSize]byte) *KeyPair {
	return NewKeyPair(ReducePrivateKey(seed))
}

func (k *KeyPair) PublicSpendKey() PublicKey { return PublicKeyFromPrivateKey(k.SpendKey) }

func (k *KeyPair) PublicViewKey() PublicKey { return PublicKeyFromPrivateKey(k.ViewKey) }

// Address returns the standard address of the key pair on network.
func (k *KeyPair) Address(network Network) string {
	return EncodePublicAddress(network, k.PublicSpendKey(), k.PublicViewKey())
}

// Mnemonic returns the 25-word mnemonic of the spend key.
func (k *KeyPair) Mnemonic() ([]string, error) {
	return SeedToMnemonic(k.SpendKey[:])
}
