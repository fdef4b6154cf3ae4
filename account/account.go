// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bianyuanop/cousin-store-contract/fault"
)

// enumeration of supported key algorithms
const (
	// zero is reserved
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the identity of a caller: an ed25519 public key and the
// network it belongs to
//
// the host asserts which account is calling, the store only compares them
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	if checksumStart <= 1 {
		return nil, fault.ErrNotPublicKey
	}

	account, err := parse(accountDecoded[:checksumStart], checksumStart)
	if nil != err {
		return nil, err
	}

	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return account, nil
}

// FromBytes - convert the packed form returned by Bytes to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	if 0 == len(accountBytes) {
		return nil, fault.ErrNotPublicKey
	}
	return parse(accountBytes, len(accountBytes))
}

// buffer is key variant ++ public key
func parse(buffer []byte, length int) (*Account, error) {

	keyVariant := buffer[0]

	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	keyLength := length - 1
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, buffer[1:length])

	account := &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}
	return account, nil
}

// Bytes - key variant ++ public key, the stored form
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Equal - same network and same public key
//
// a nil account is never equal to anything
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
