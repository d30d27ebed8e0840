// derive_address derives the Monero standard address of a mnemonic for testing.
//
// Usage:
//
//	go run ./scripts/derive_address "your 25 word seed phrase here"
//
// Or with stdin:
//
//	echo "your 25 word seed phrase" | go run ./scripts/derive_address
//
// The checksum word may be left out. Set XMR_NETWORK to testnet or stagenet
// to derive addresses for those networks.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/complex-gh/xmrseed"
)

func main() {
	var mnemonic string

	if len(os.Args) > 1 {
		mnemonic = strings.Join(os.Args[1:], " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")

	if mnemonic == "" {
		fmt.Fprintln(os.Stderr, "Usage: derive_address \"25 word seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_address")
		os.Exit(1)
	}

	network, err := xmrseed.ParseNetwork(os.Getenv("XMR_NETWORK"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed, err := xmrseed.RestoreMnemonic(mnemonic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var s [xmrseed.SeedSize]byte
	copy(s[:], seed)
	fmt.Println(xmrseed.NewKeyPairFromSeed(s).Address(network))
}
