// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/complex-gh/xmrseed/internal/base58"
)

// Network is the one-byte address prefix identifying the network.
type Network byte

const (
	MainNetwork  Network = 0x12
	TestNetwork  Network = 0x35
	StageNetwork Network = 0x18
)

func (n Network) String() string {
	switch n {
	case MainNetwork:
		return "mainnet"
	case TestNetwork:
		return "testnet"
	case StageNetwork:
		return "stagenet"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(n))
	}
}

// ParseNetwork maps a network name to its address prefix.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main", "":
		return MainNetwork, nil
	case "testnet", "test":
		return TestNetwork, nil
	case "stagenet", "stage":
		return StageNetwork, nil
	default:
		return 0, fmt.Errorf("unknown network %q (must be mainnet, testnet or stagenet)", name)
	}
}

const (
	checksumSize = 4
	payloadSize  = 1 + 2*KeySize
	addressSize  = payloadSize + checksumSize
)

// Address is a decoded standard address.
type Address struct {
	Network        Network
	PublicSpendKey PublicKey
	PublicViewKey  PublicKey
	Checksum       [checksumSize]byte
}

// EncodeAddress returns the mainnet address of a private spend key.
func EncodeAddress(spend PrivateKey) string {
	return EncodeAddressForNetwork(MainNetwork, spend)
}

// EncodeAddressForNetwork returns the address of a private spend key on
// network. The view key is derived from the spend key.
func EncodeAddressForNetwork(network Network, spend PrivateKey) string {
	view := PrivateViewKey(spend)
	return EncodePublicAddress(network, PublicKeyFromPrivateKey(spend), PublicKeyFromPrivateKey(view))
}

// EncodePublicAddress encodes network ‖ spend ‖ view followed by the first
// four bytes of its Keccak-256 hash.
func EncodePublicAddress(network Network, spend, view PublicKey) string {
	raw := make([]byte, 0, addressSize)
	raw = append(raw, byte(network))
	raw = append(raw, spend[:]...)
	raw = append(raw, view[:]...)
	sum := keccak256(raw)
	raw = append(raw, sum[:checksumSize]...)
	return base58.Encode(raw)
}

// DecodeAddress splits an address into its parts. The checksum is not
// verified; use Valid or ValidateAddress for that.
func DecodeAddress(address string) (*Address, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(raw) != addressSize {
		return nil, fmt.Errorf("%w: decoded to %d bytes, want %d", ErrInvalidAddress, len(raw), addressSize)
	}

	a := &Address{Network: Network(raw[0])}
	copy(a.PublicSpendKey[:], raw[1:1+KeySize])
	copy(a.PublicViewKey[:], raw[1+KeySize:payloadSize])
	copy(a.Checksum[:], raw[payloadSize:])
	return a, nil
}

// Valid reports whether the stored checksum matches the address contents.
func (a *Address) Valid() bool {
	sum := keccak256([]byte{byte(a.Network)}, a.PublicSpendKey[:], a.PublicViewKey[:])
	return bytes.Equal(sum[:checksumSize], a.Checksum[:])
}

// String re-encodes the address with its stored checksum.
func (a *Address) String() string {
	raw := make([]byte, 0, addressSize)
	raw = append(raw, byte(a.Network))
	raw = append(raw, a.PublicSpendKey[:]...)
	raw = append(raw, a.PublicViewKey[:]...)
	raw = append(raw, a.Checksum[:]...)
	return base58.Encode(raw)
}

// ValidateAddress reports whether address decodes and carries a correct
// checksum. It never fails; malformed input is simply invalid.
func ValidateAddress(address string) bool {
	a, err := DecodeAddress(address)
	if err != nil {
		return false
	}
	return a.Valid()
}
