// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestToMnemonic_Vector derives the wallet of an ed25519 key whose seed is
// the reference seed.
func TestToMnemonic_Vector(t *testing.T) {
	is := is.New(t)

	key := ed25519.NewKeyFromSeed(mustHex(t, testSeedHex))

	mnemonic, err := ToMnemonic(&key, "")
	is.NoErr(err)
	is.Equal(mnemonic, testMnemonic)

	kp := KeyPairFromEd25519(&key, "")
	is.Equal(kp.SpendKey.String(), testSeedHex)
	is.Equal(kp.Address(MainNetwork), testAddress)
}

// TestToMnemonic_Format checks the phrase shape for random keys.
func TestToMnemonic_Format(t *testing.T) {
	is := is.New(t)

	_, key, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	mnemonic, err := ToMnemonic(&key, "")
	is.NoErr(err)
	is.Equal(len(strings.Fields(mnemonic)), 25)
	is.NoErr(VerifyMnemonicChecksum(mnemonic))
}

// TestToMnemonic_Deterministic verifies that the same key and passphrase
// always produce the same mnemonic.
func TestToMnemonic_Deterministic(t *testing.T) {
	is := is.New(t)

	_, key, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	mnemonic1, err := ToMnemonic(&key, "test-passphrase")
	is.NoErr(err)

	mnemonic2, err := ToMnemonic(&key, "test-passphrase")
	is.NoErr(err)

	is.Equal(mnemonic1, mnemonic2)
}

// TestToMnemonic_DifferentInputsProduceDifferentResults verifies that
// different keys or passphrases produce different wallets.
func TestToMnemonic_DifferentInputsProduceDifferentResults(t *testing.T) {
	is := is.New(t)

	_, key1, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	_, key2, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	mnemonic1, err := ToMnemonic(&key1, "")
	is.NoErr(err)

	mnemonic2, err := ToMnemonic(&key2, "")
	is.NoErr(err)

	is.True(mnemonic1 != mnemonic2)

	mnemonic3, err := ToMnemonic(&key1, "passphrase1")
	is.NoErr(err)

	mnemonic4, err := ToMnemonic(&key1, "passphrase2")
	is.NoErr(err)

	is.True(mnemonic3 != mnemonic4)
	is.True(mnemonic1 != mnemonic3)
}

// TestToMnemonic_Restore verifies that restoring the phrase yields the wallet
// KeyPairFromEd25519 derived, even for seeds above the group order.
func TestToMnemonic_Restore(t *testing.T) {
	for range 8 {
		is := is.New(t)

		_, key, err := ed25519.GenerateKey(rand.Reader)
		is.NoErr(err)

		kp := KeyPairFromEd25519(&key, "restore")
		is.True(kp.SpendKey.Canonical())

		mnemonic, err := ToMnemonic(&key, "restore")
		is.NoErr(err)

		seed, err := RestoreMnemonic(mnemonic)
		is.NoErr(err)

		spend, err := PrivateKeyFromBytes(seed)
		is.NoErr(err)
		restored := NewKeyPairFromSeed(spend)
		is.Equal(*restored, *kp)
		is.Equal(restored.Address(MainNetwork), kp.Address(MainNetwork))
	}
}
