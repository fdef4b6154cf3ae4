// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/fault"
)

// seed layout: header ++ network ++ ed25519 seed ++ checksum
var seedHeader = []byte{0x5a, 0xfe, 0x03}

const (
	seedNetworkLength  = 1
	seedChecksumLength = 4
	seedLength         = 3 + seedNetworkLength + ed25519.SeedSize + seedChecksumLength
)

// KeyPair - structure to hold the identity and private key and the
// seed that was used to generate them
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	seedCore := make([]byte, ed25519.SeedSize)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if ed25519.SeedSize != n {
		panic("too few random bytes")
	}
	return packSeed(seedCore, test), nil
}

func packSeed(seedCore []byte, test bool) string {
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := make([]byte, 0, seedLength)
	packedSeed = append(packedSeed, seedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return base58.Encode(packedSeed)
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := NewSeed(test)
	if err != nil {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {

	packedSeed, err := base58.Decode(seed)
	if nil != err || seedLength != len(packedSeed) {
		return nil, nil, fault.ErrInvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(packedSeed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], packedSeed[checksumStart:]) {
		return nil, nil, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(seedHeader, packedSeed[:len(seedHeader)]) {
		return nil, nil, fault.ErrInvalidSeedHeader
	}

	test := 0x01 == packedSeed[len(seedHeader)]
	coreStart := len(seedHeader) + seedNetworkLength

	privateKey := ed25519.NewKeyFromSeed(packedSeed[coreStart:checksumStart])
	publicKey := privateKey.Public().(ed25519.PublicKey)

	acc := &account.Account{
		Test:      test,
		PublicKey: []byte(publicKey),
	}

	keyPair := KeyPair{
		Seed:       seed,
		Account:    acc,
		PrivateKey: privateKey,
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey),
	}

	return &rawKeyPair, &keyPair, nil
}

// AccountFromHexPublicKey - create an account from a hexadecimal public key
func AccountFromHexPublicKey(publicKey string, test bool) (*account.Account, error) {

	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(k) {
		return nil, fault.ErrInvalidKeyLength
	}

	account := &account.Account{
		Test:      test,
		PublicKey: k,
	}
	return account, nil
}
