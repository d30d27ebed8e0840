// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/holiman/uint256"
	"github.com/matryer/is"
)

const (
	testSeedHex      = "78fdb9c9710ef2144c483c2bce405707f712fe0ec56ccbc92f1c18c6a86f0c05"
	testPubSpendHex  = "6523f094e6ddd1db9fa77702188ff7b34c87eeb0c79c94d25b642b7813ee686c"
	testViewKeyHex   = "ec215a86562d63d349e9ef21e0ed2d56252122b823433dae8d36b2ad8083c904"
	testPubViewHex   = "642310ab76a2f94f50ebfb134a01b2e8310a2acf674bb526ee636905fc1b673f"
	basePointHex     = "5866666666666666666666666666666666666666666666666666666666666666"
	groupOrderHex    = "0x1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"
	allOnesHex       = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	allOnesReduced   = "1c95988d7431ecd670cf7d73f45befc6feffffffffffffffffffffffffffff0f"
	allOnesPublicHex = "db27fe4b7a4beb8c1b8c38a21e943a852304c9bb3035a5f36626b51162a68f9c"
)

func mustPrivateKey(t *testing.T, s string) PrivateKey {
	t.Helper()
	k, err := PrivateKeyFromHex(s)
	if err != nil {
		t.Fatalf("PrivateKeyFromHex(%q): %v", s, err)
	}
	return k
}

// TestPublicKeyFromPrivateKey_Vector checks the public spend key of the
// reference seed.
func TestPublicKeyFromPrivateKey_Vector(t *testing.T) {
	is := is.New(t)

	spend := mustPrivateKey(t, testSeedHex)
	is.Equal(PublicKeyFromPrivateKey(spend).String(), testPubSpendHex)
}

// TestPrivateViewKey_Vector checks the private and public view keys of the
// reference seed.
func TestPrivateViewKey_Vector(t *testing.T) {
	is := is.New(t)

	spend := mustPrivateKey(t, testSeedHex)
	view := PrivateViewKey(spend)
	is.Equal(view.String(), testViewKeyHex)
	is.Equal(PublicKeyFromPrivateKey(view).String(), testPubViewHex)
}

// TestPrivateViewKey_Deterministic verifies the view key is a pure function
// of the spend key, also under concurrent use.
func TestPrivateViewKey_Deterministic(t *testing.T) {
	is := is.New(t)

	spend := mustPrivateKey(t, testSeedHex)
	want := PrivateViewKey(spend)

	var wg sync.WaitGroup
	results := make([]PrivateKey, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = PrivateViewKey(spend)
		}()
	}
	wg.Wait()

	for _, got := range results {
		is.Equal(got, want)
	}
}

// TestPublicKeyFromPrivateKey_NonCanonical verifies keys at or above the
// group order are accepted and reduced.
func TestPublicKeyFromPrivateKey_NonCanonical(t *testing.T) {
	is := is.New(t)

	k := mustPrivateKey(t, allOnesHex)
	is.True(!k.Canonical())
	is.Equal(PublicKeyFromPrivateKey(k).String(), allOnesPublicHex)

	reduced := ReducePrivateKey(k)
	is.Equal(reduced.String(), allOnesReduced)
	is.True(reduced.Canonical())
	is.Equal(PublicKeyFromPrivateKey(reduced), PublicKeyFromPrivateKey(k))
}

func TestPrivateKeyFromScalar(t *testing.T) {
	is := is.New(t)

	is.Equal(PrivateKeyFromScalar(uint256.NewInt(1)).String(), "01"+strings.Repeat("00", 31))
	is.Equal(PrivateKeyFromScalar(uint256.NewInt(0x0102)).String(), "0201"+strings.Repeat("00", 30))

	// Little-endian: the most significant limb ends up in the last bytes.
	l := uint256.MustFromHex(groupOrderHex)
	is.Equal(PrivateKeyFromScalar(l).String(), "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
}

func TestPublicKeyFromScalar(t *testing.T) {
	is := is.New(t)

	is.Equal(PublicKeyFromScalar(uint256.NewInt(1)).String(), basePointHex)

	// L+1 reduces to 1.
	l := uint256.MustFromHex(groupOrderHex)
	lPlusOne := new(uint256.Int).AddUint64(l, 1)
	is.Equal(PublicKeyFromScalar(lPlusOne).String(), basePointHex)

	spend := mustPrivateKey(t, testSeedHex)
	is.Equal(PublicKeyFromScalar(new(uint256.Int).SetBytes(reverse(spend[:]))), PublicKeyFromPrivateKey(spend))
}

func TestPrivateKeyFromHex_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"00",
		testSeedHex + "00",
		strings.Repeat("zz", 32),
		"0x" + testSeedHex[2:],
	} {
		t.Run(s, func(t *testing.T) {
			is := is.New(t)
			_, err := PrivateKeyFromHex(s)
			is.True(errors.Is(err, ErrInvalidEncoding))
		})
	}
}

func TestPrivateKeyFromBytes(t *testing.T) {
	is := is.New(t)

	_, err := PrivateKeyFromBytes(make([]byte, 31))
	is.True(errors.Is(err, ErrInvalidEncoding))

	spend := mustPrivateKey(t, testSeedHex)
	k, err := PrivateKeyFromBytes(spend[:])
	is.NoErr(err)
	is.Equal(k, spend)
}

// TestNewKeyPairFromSeed_Reduces verifies that seeds above the group order
// are turned into canonical spend keys with matching public keys.
func TestNewKeyPairFromSeed_Reduces(t *testing.T) {
	is := is.New(t)

	seed := mustPrivateKey(t, allOnesHex)
	kp := NewKeyPairFromSeed(seed)
	is.Equal(kp.SpendKey.String(), allOnesReduced)
	is.Equal(kp.ViewKey, PrivateViewKey(kp.SpendKey))
	is.Equal(kp.PublicSpendKey(), PublicKeyFromPrivateKey(seed))
	is.Equal(kp.Address(MainNetwork), EncodeAddress(kp.SpendKey))

	// A canonical seed is used unchanged.
	canonical := NewKeyPairFromSeed(mustPrivateKey(t, testSeedHex))
	is.Equal(canonical.SpendKey.String(), testSeedHex)
	is.Equal(canonical.ViewKey.String(), testViewKeyHex)
	is.Equal(canonical.PublicViewKey().String(), testPubViewHex)
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
