// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of network parameter error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrGenesisBuild indicates the genesis block could not be assembled
	// from its descriptor.
	ErrGenesisBuild ErrorCode = iota

	// ErrGenesisMerkleMismatch indicates the merkle root computed for a
	// genesis block does not match the hard-coded value.
	ErrGenesisMerkleMismatch

	// ErrGenesisHashMismatch indicates the hash computed for a genesis
	// block does not match the hard-coded value.
	ErrGenesisHashMismatch

	// ErrCheckpointOrder indicates the heights in a checkpoint table are
	// not strictly increasing.
	ErrCheckpointOrder

	// ErrPowLimitMismatch indicates the compact and big integer forms of
	// the proof of work limit disagree.
	ErrPowLimitMismatch

	// ErrAmbiguousPrefix indicates an address prefix is missing or is a
	// prefix of another address kind on the same network.
	ErrAmbiguousPrefix

	// ErrInvalidPubKey indicates a hard-coded public key is not a valid
	// secp256k1 key.
	ErrInvalidPubKey

	// ErrUnknownNetwork indicates a network kind or name that does not
	// identify one of the known networks.
	ErrUnknownNetwork

	// ErrNotSelected indicates the active parameters were requested
	// before a network was selected.
	ErrNotSelected

	// ErrAlreadySelected indicates an attempt to select a network after a
	// different one was already made active.
	ErrAlreadySelected

	// ErrNotModifiable indicates the modifiable parameters were requested
	// while a network other than the unit test network is active.
	ErrNotModifiable

	// ErrUnknownAddressPrefix indicates a decoded address does not start
	// with any address prefix of the network.
	ErrUnknownAddressPrefix

	// ErrUnknownHDKeyID indicates an extended key id that is not known to
	// the network.
	ErrUnknownHDKeyID

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrGenesisBuild:          "ErrGenesisBuild",
	ErrGenesisMerkleMismatch: "ErrGenesisMerkleMismatch",
	ErrGenesisHashMismatch:   "ErrGenesisHashMismatch",
	ErrCheckpointOrder:       "ErrCheckpointOrder",
	ErrPowLimitMismatch:      "ErrPowLimitMismatch",
	ErrAmbiguousPrefix:       "ErrAmbiguousPrefix",
	ErrInvalidPubKey:         "ErrInvalidPubKey",
	ErrUnknownNetwork:        "ErrUnknownNetwork",
	ErrNotSelected:           "ErrNotSelected",
	ErrAlreadySelected:       "ErrAlreadySelected",
	ErrNotModifiable:         "ErrNotModifiable",
	ErrUnknownAddressPrefix:  "ErrUnknownAddressPrefix",
	ErrUnknownHDKeyID:        "ErrUnknownHDKeyID",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ParamsError identifies a problem with the network parameters or with the
// way they were accessed.  The caller can use type assertions (or
// errors.As) to access the ErrorCode field.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParamsError) Error() string {
	return e.Description
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, desc string) ParamsError {
	return ParamsError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a ParamsError carrying the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	var perr ParamsError
	if !errors.As(err, &perr) {
		return false
	}
	return perr.ErrorCode == c
}
