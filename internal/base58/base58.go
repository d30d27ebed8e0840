// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package base58 implements the block-wise base58 encoding used by CryptoNote
// addresses.
//
// Unlike base58check, the input is split into 8-byte blocks and every block is
// encoded on its own into a fixed number of characters, left-padded with the
// zero digit. A full block always takes 11 characters; a trailing partial
// block of n bytes takes encodedBlockSizes[n] characters. The encoded length
// is therefore a function of the input length only.
package base58

import (
	"errors"
	"fmt"
	"math/bits"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
)

// encodedBlockSizes maps a block length in bytes to its encoded length in
// characters. It must match Monero's encoded_block_sizes exactly, otherwise
// addresses will not interoperate with other wallets.
var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

var (
	// ErrInvalidCharacter is returned when the input contains a character
	// outside of the base58 alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrInvalidBlockSize is returned when the trailing block has a length
	// no byte block encodes to.
	ErrInvalidBlockSize = errors.New("invalid base58 block size")
	// ErrOverflow is returned when a block decodes to a value that does not
	// fit the number of bytes implied by its length.
	ErrOverflow = errors.New("base58 block overflow")
)

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
	}
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int {
	return n/fullBlockSize*fullEncodedBlockSize + encodedBlockSizes[n%fullBlockSize]
}

// Encode returns the block base58 encoding of data.
func Encode(data []byte) string {
	out := make([]byte, 0, EncodedLen(len(data)))
	for len(data) > 0 {
		n := min(len(data), fullBlockSize)
		out = encodeBlock(out, data[:n])
		data = data[n:]
	}
	return string(out)
}

func encodeBlock(dst, block []byte) []byte {
	var num uint64
	for _, b := range block {
		num = num<<8 | uint64(b)
	}

	size := encodedBlockSizes[len(block)]
	start := len(dst)
	for range size {
		dst = append(dst, alphabet[0])
	}
	for i := size - 1; i >= 0 && num > 0; i-- {
		dst[start+i] = alphabet[num%58]
		num /= 58
	}
	return dst
}

// Decode decodes a block base58 string. The result has exactly the length
// the encoded length implies.
func Decode(s string) ([]byte, error) {
	fullBlocks := len(s) / fullEncodedBlockSize
	lastEncoded := len(s) % fullEncodedBlockSize
	lastSize := decodedBlockSize(lastEncoded)
	if lastSize < 0 {
		return nil, fmt.Errorf("%w: trailing block of %d characters", ErrInvalidBlockSize, lastEncoded)
	}

	out := make([]byte, 0, fullBlocks*fullBlockSize+lastSize)
	var err error
	for i := 0; i < fullBlocks; i++ {
		block := s[i*fullEncodedBlockSize : (i+1)*fullEncodedBlockSize]
		out, err = decodeBlock(out, block, fullBlockSize)
		if err != nil {
			return nil, err
		}
	}
	if lastEncoded > 0 {
		out, err = decodeBlock(out, s[fullBlocks*fullEncodedBlockSize:], lastSize)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// decodedBlockSize is the inverse of encodedBlockSizes, -1 if no block
// length encodes to n characters.
func decodedBlockSize(n int) int {
	for size, encoded := range encodedBlockSizes {
		if encoded == n {
			return size
		}
	}
	return -1
}

func decodeBlock(dst []byte, block string, size int) ([]byte, error) {
	var num uint64
	for i := 0; i < len(block); i++ {
		digit := decodeMap[block[i]]
		if digit < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, block[i])
		}
		hi, lo := bits.Mul64(num, 58)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %q", ErrOverflow, block)
		}
		var carry uint64
		num, carry = bits.Add64(lo, uint64(digit), 0)
		if carry != 0 {
			return nil, fmt.Errorf("%w: %q", ErrOverflow, block)
		}
	}
	if size < fullBlockSize && num>>(8*size) != 0 {
		return nil, fmt.Errorf("%w: %q", ErrOverflow, block)
	}

	var buf [fullBlockSize]byte
	for i := size - 1; i >= 0; i-- {
		buf[i] = byte(num)
		num >>= 8
	}
	return append(dst, buf[:size]...), nil
}
