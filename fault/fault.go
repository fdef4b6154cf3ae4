// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCannotDecodeAccount  = RecordError("cannot decode account")
	ErrChecksumMismatch     = ProcessError("checksum mismatch")
	ErrConfigurationPath    = InvalidError("configuration path is not a directory")
	ErrCounterOverflow      = ProcessError("record counter overflow")
	ErrDatabaseVersion      = RecordError("incompatible database version")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidKeyLength     = LengthError("invalid key length")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidPoolPrefix    = InvalidError("invalid pool prefix")
	ErrInvalidSeedHeader    = InvalidError("invalid seed header")
	ErrInvalidSeedLength    = LengthError("invalid seed length")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingCaller        = InvalidError("missing caller identity")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNotFoundIdentity     = NotFoundError("identity name not found")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotPublicKey         = RecordError("not a public key")
	ErrReadOnly             = InvalidError("database opened read only")
	ErrTransactionInUse     = ProcessError("transaction already in use")
	ErrTransactionNotInUse  = ProcessError("transaction not in use")
	ErrUnknownMethod        = NotFoundError("unknown method")
	ErrUnsupportedFileType  = InvalidError("unsupported configuration file type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
