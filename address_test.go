// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/complex-gh/xmrseed/internal/base58"
	"github.com/matryer/is"
)

const testAddress = "45TQgTZMeP2djdDqwNg2CnWzRchgQ8K8FcBj8XrSPBBVK8Xk1yaJYQpEGU144rGuQdfqYqqaMVtZA7WgXQ1jigmk8BGWKAx"

func TestEncodeAddress_Vector(t *testing.T) {
	is := is.New(t)

	spend := mustPrivateKey(t, testSeedHex)
	is.Equal(EncodeAddress(spend), testAddress)
	is.Equal(NewKeyPair(spend).Address(MainNetwork), testAddress)
}

func TestDecodeAddress_Vector(t *testing.T) {
	is := is.New(t)

	a, err := DecodeAddress(testAddress)
	is.NoErr(err)
	is.Equal(a.Network, MainNetwork)
	is.Equal(a.PublicSpendKey.String(), testPubSpendHex)
	is.Equal(a.PublicViewKey.String(), testPubViewHex)
	is.Equal(fmt.Sprintf("%x", a.Checksum), "9d2c8d41")
	is.True(a.Valid())
	is.Equal(a.String(), testAddress)
}

// TestAddress_RoundTrip checks decode(encode(k)) against the key derivation
// for a few spend keys, including one above the group order.
func TestAddress_RoundTrip(t *testing.T) {
	for _, h := range []string{testSeedHex, restoreSeedHex, allOnesHex, strings.Repeat("00", 32)} {
		t.Run(h[:8], func(t *testing.T) {
			is := is.New(t)
			spend := mustPrivateKey(t, h)

			for _, network := range []Network{MainNetwork, TestNetwork, StageNetwork} {
				addr := EncodeAddressForNetwork(network, spend)
				is.Equal(len(addr), 95)
				is.True(ValidateAddress(addr))

				a, err := DecodeAddress(addr)
				is.NoErr(err)
				is.Equal(a.Network, network)
				is.Equal(a.PublicSpendKey, PublicKeyFromPrivateKey(spend))
				is.Equal(a.PublicViewKey, PublicKeyFromPrivateKey(PrivateViewKey(spend)))
			}
		})
	}
}

func TestEncodeAddress_NetworkPrefix(t *testing.T) {
	is := is.New(t)

	spend := mustPrivateKey(t, testSeedHex)
	is.Equal(EncodeAddressForNetwork(MainNetwork, spend)[:1], "4")
	is.Equal(EncodeAddressForNetwork(TestNetwork, spend)[:1], "9")
	is.Equal(EncodeAddressForNetwork(StageNetwork, spend)[:1], "5")
}

// TestValidateAddress_SingleCharacter alters every position of the address
// in turn; none of the results may validate.
func TestValidateAddress_SingleCharacter(t *testing.T) {
	is := is.New(t)

	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	for i := range len(testAddress) {
		next := alphabet[(strings.IndexByte(alphabet, testAddress[i])+1)%len(alphabet)]
		altered := testAddress[:i] + string(next) + testAddress[i+1:]
		is.True(!ValidateAddress(altered)) // altered character still validates
	}
}

func TestValidateAddress_Malformed(t *testing.T) {
	is := is.New(t)

	for _, s := range []string{
		"",
		"4",
		"not an address",
		testAddress[:94],
		testAddress + "1",
		testAddress[:len(testAddress)-11],
		"0" + testAddress[1:],
		strings.Repeat("z", 95),
		base58.Encode(make([]byte, 68)),
		base58.Encode(make([]byte, 70)),
	} {
		is.True(!ValidateAddress(s))
	}
}

func TestDecodeAddress_Invalid(t *testing.T) {
	for name, s := range map[string]string{
		"alphabet":  "0" + testAddress[1:],
		"truncated": testAddress[:94],
		"overflow":  strings.Repeat("z", 95),
		"too short": base58.Encode(make([]byte, 65)),
		"too long":  base58.Encode(make([]byte, 77)),
	} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := DecodeAddress(s)
			is.True(errors.Is(err, ErrInvalidAddress))
		})
	}

	is := is.New(t)
	_, err := DecodeAddress("0" + testAddress[1:])
	is.True(errors.Is(err, base58.ErrInvalidCharacter))
}

// TestDecodeAddress_ChecksumNotVerified verifies that decoding succeeds on a
// corrupted checksum and only Valid reports it.
func TestDecodeAddress_ChecksumNotVerified(t *testing.T) {
	is := is.New(t)

	a, err := DecodeAddress(testAddress)
	is.NoErr(err)
	a.Checksum[0] ^= 0xff

	b, err := DecodeAddress(a.String())
	is.NoErr(err)
	is.True(!b.Valid())
	is.True(!ValidateAddress(a.String()))
}

func TestParseNetwork(t *testing.T) {
	is := is.New(t)

	for name, want := range map[string]Network{
		"":         MainNetwork,
		"mainnet":  MainNetwork,
		"Testnet":  TestNetwork,
		"stagenet": StageNetwork,
		" stage ":  StageNetwork,
	} {
		got, err := ParseNetwork(name)
		is.NoErr(err)
		is.Equal(got, want)
	}

	_, err := ParseNetwork("regtest")
	is.True(err != nil)

	is.Equal(MainNetwork.String(), "mainnet")
	is.Equal(Network(0x2a).String(), "unknown(0x2a)")
}
