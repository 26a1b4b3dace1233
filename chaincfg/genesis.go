// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// GenesisDescriptor holds the fixed inputs a genesis block is built from
// together with the hashes the built block must reproduce.
type GenesisDescriptor struct {
	// CoinbaseTime is the number pushed first in the coinbase signature
	// script.
	CoinbaseTime int64

	// CoinbaseTag is the single byte pushed after the coinbase time.
	CoinbaseTag byte

	// Message is the text embedded in the coinbase signature script.
	Message string

	// OutputValue is the value of the single coinbase output.
	OutputValue btcutil.Amount

	// OutputPubKey is the uncompressed public key the coinbase output pays
	// to.
	OutputPubKey []byte

	// Version, Timestamp, Bits and Nonce are copied into the block header.
	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32

	// MerkleRoot is the expected merkle root of the block.
	MerkleRoot *chainhash.Hash

	// Hash is the published block hash.  A nil hash leaves the block hash
	// unverified.
	Hash *chainhash.Hash
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// <coinbase time> <tag byte> <message>.
func genesisCoinbaseScript(desc *GenesisDescriptor) ([]byte, error) {
	// The tag byte is pushed as data.  AddData would encode it as a small
	// integer opcode instead.
	return txscript.NewScriptBuilder().
		AddInt64(desc.CoinbaseTime).
		AddOps([]byte{txscript.OP_DATA_1, desc.CoinbaseTag}).
		AddData([]byte(desc.Message)).
		Script()
}

// genesisOutputScript returns the pay-to-pubkey script of the genesis coinbase
// output.
func genesisOutputScript(desc *GenesisDescriptor) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(desc.OutputPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// buildGenesisBlock constructs the single transaction genesis block described
// by desc.  The merkle root in the returned header is computed, not copied
// from the descriptor.
func buildGenesisBlock(desc *GenesisDescriptor) (*wire.MsgBlock, error) {
	sigScript, err := genesisCoinbaseScript(desc)
	if err != nil {
		str := fmt.Sprintf("unable to build coinbase script: %v", err)
		return nil, paramsError(ErrGenesisBuild, str)
	}
	pkScript, err := genesisOutputScript(desc)
	if err != nil {
		str := fmt.Sprintf("unable to build output script: %v", err)
		return nil, paramsError(ErrGenesisBuild, str)
	}

	coinbase := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(wire.NewTxOut(int64(desc.OutputValue), pkScript))

	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false)
	merkleRoot := merkles[len(merkles)-1]

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    desc.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *merkleRoot,
			Timestamp:  desc.Timestamp,
			Bits:       desc.Bits,
			Nonce:      desc.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

// BlockHasher computes the identifying hash of a block header.  The header
// hash function of the chain is consensus code and is supplied by the caller
// through Config.
type BlockHasher func(header *wire.BlockHeader) chainhash.Hash

// verifyGenesisBlock ensures the merkle root of a built genesis block equals
// the expected value of its descriptor and returns the genesis hash.
//
// When hasher is non-nil the header hash is recomputed with it and must equal
// the descriptor's hash.  Without a hasher the descriptor's hash is taken as
// published.  A descriptor without a hash falls back to the double SHA-256
// of the header.
func verifyGenesisBlock(block *wire.MsgBlock, desc *GenesisDescriptor,
	hasher BlockHasher) (chainhash.Hash, error) {

	if desc.MerkleRoot == nil || !desc.MerkleRoot.IsEqual(&block.Header.MerkleRoot) {
		str := fmt.Sprintf("genesis merkle root %v does not match the "+
			"expected %v", block.Header.MerkleRoot, desc.MerkleRoot)
		return chainhash.Hash{}, paramsError(ErrGenesisMerkleMismatch, str)
	}

	switch {
	case hasher != nil:
		hash := hasher(&block.Header)
		if desc.Hash != nil && !desc.Hash.IsEqual(&hash) {
			str := fmt.Sprintf("genesis block hash %v does not match the "+
				"expected %v", hash, desc.Hash)
			return chainhash.Hash{}, paramsError(ErrGenesisHashMismatch, str)
		}
		return hash, nil

	case desc.Hash != nil:
		return *desc.Hash, nil
	}
	return block.BlockHash(), nil
}
