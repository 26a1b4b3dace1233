// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// checksumLen is the length of the double sha256 checksum that ends
	// every base58check string.
	checksumLen = 4

	// hash160Len is the length of the hash an address pays to.
	hash160Len = 20

	// compressMagic follows the private key of a secret key whose public
	// key is serialized compressed.
	compressMagic = 0x01

	// extKeyBodyLen is the length of a serialized extended key without its
	// four byte version: depth, parent fingerprint, child number, chain
	// code and key.
	extKeyBodyLen = 1 + 4 + 4 + 32 + 33
)

// checksum returns the first four bytes of the double sha256 of input.
func checksum(input []byte) []byte {
	return chainhash.DoubleHashB(input)[:checksumLen]
}

// EncodePrefixed returns the base58check encoding of data behind the prefix
// of the passed kind.
func (p *Params) EncodePrefixed(t Base58Type, data []byte) (string, error) {
	if t < 0 || t >= numBase58Types || len(p.Base58Prefixes[t]) == 0 {
		str := fmt.Sprintf("%s network has no %v prefix", p.Name, t)
		return "", paramsError(ErrUnknownAddressPrefix, str)
	}
	prefix := p.Base58Prefixes[t]
	b := make([]byte, 0, len(prefix)+len(data)+checksumLen)
	b = append(b, prefix...)
	b = append(b, data...)
	b = append(b, checksum(b)...)
	return base58.Encode(b), nil
}

// validBody returns whether body, the payload following the prefix, has the
// length of the passed kind.
func validBody(kind Base58Type, body []byte) bool {
	switch kind {
	case PubKeyAddress, ScriptAddress:
		return len(body) == hash160Len

	case SecretKey:
		return len(body) == btcec.PrivKeyBytesLen ||
			len(body) == btcec.PrivKeyBytesLen+1 &&
				body[btcec.PrivKeyBytesLen] == compressMagic

	case ExtPublicKey, ExtSecretKey:
		return len(body) == extKeyBodyLen
	}
	return false
}

// ClassifyAddress decodes a base58check string and returns the kind of
// address or key it encodes on this network.  A kind matches when the payload
// starts with its prefix and the rest has the length of that kind.  It returns
// base58.ErrChecksum or base58.ErrInvalidFormat when the string is not valid
// base58check, and a ParamsError with ErrUnknownAddressPrefix when no kind of
// this network matches.
func (p *Params) ClassifyAddress(s string) (Base58Type, error) {
	decoded := base58.Decode(s)
	if len(decoded) <= checksumLen {
		return 0, base58.ErrInvalidFormat
	}
	payload := decoded[:len(decoded)-checksumLen]
	if !bytes.Equal(checksum(payload), decoded[len(decoded)-checksumLen:]) {
		return 0, base58.ErrChecksum
	}

	for _, kind := range addressKinds {
		prefix := p.Base58Prefixes[kind]
		if len(prefix) != 0 && bytes.HasPrefix(payload, prefix) &&
			validBody(kind, payload[len(prefix):]) {

			return kind, nil
		}
	}

	str := fmt.Sprintf("%q is not an address or key of the %s network", s,
		p.Name)
	return 0, paramsError(ErrUnknownAddressPrefix, str)
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not the extended private key id of this network, a ParamsError with
// ErrUnknownHDKeyID is returned.
func (p *Params) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 || !bytes.Equal(id, p.Base58Prefixes[ExtSecretKey]) {
		str := fmt.Sprintf("unknown hd private extended key bytes %x", id)
		return nil, paramsError(ErrUnknownHDKeyID, str)
	}
	return p.Base58Prefix(ExtPublicKey), nil
}
