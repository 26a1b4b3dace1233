// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// testNetPowLimit is the highest proof of work value a block can have for the
// test network.  It is the value 2^238 - 1.
var testNetPowLimit = new(big.Int).Rsh(maxUint256, 18)

// testNetGenesisHash is the hash of the first block in the block chain for the
// test network.
var testNetGenesisHash = newHashFromStr("0000007bd412fc03093d1fafdc21436091d37e417f4003663307c4df920bc1c2")

// testNetOverrides are applied on top of the main network defaults to build
// the test network.  The regression test network builds on them as well.
//
// The genesis block keeps the difficulty bits of the main network; only its
// time and nonce change.
var testNetOverrides = []paramsOverride{
	withIdentity(TestNet, wire.BitcoinNet(0xd5c3b7a3), "17642"),
	withAlertPubKey(hexDecode("0418ee48636371ae4300eed0f10434a827ed373e76" +
		"c415f11fcebd4ee2366e617b195a14c3d62009c516e1d901d04d48e21ddc3288" +
		"81127e0948a0023372f2ed2b")),
	withPowLimit(testNetPowLimit, 0x1e3fffff),
	withTiming(time.Minute, time.Second*10),
	withMinerThreads(0),
	withLastPOWBlock(math.MaxInt32),
	withCoinbaseMaturity(15),
	withMaxMoneyOut(100000000 * btcutil.SatoshiPerBitcoin),
	withBlockUpgradeMajorities(51, 75, 100),
	withGenesis(func(g *GenesisDescriptor) {
		g.Timestamp = time.Unix(1523131565, 0)
		g.Nonce = 106084
		g.Hash = testNetGenesisHash
	}),
	withDNSSeeds(),
	withFixedSeeds(),

	// The test network uses the bitcoin test network encodings.  The BIP44
	// coin type is 1, shared by all test networks.
	withBase58Prefixes([numBase58Types][]byte{
		PubKeyAddress: {111},
		ScriptAddress: {196},
		SecretKey:     {239},
		ExtPublicKey:  {0x04, 0x35, 0x87, 0xcf},
		ExtSecretKey:  {0x04, 0x35, 0x83, 0x94},
		ExtCoinType:   {0x80, 0x00, 0x00, 0x01},
	}),
	withFlags(Flags{
		RequireRPCPassword:            false,
		MiningRequiresPeers:           false,
		AllowMinDifficultyBlocks:      true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               false,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: true,
		HeadersFirstSyncingActive:     false,
	}),
	withMasternodes(
		"04e2110ac8dfadfea46abcfe9eef975f080219a5430f88f6125b696c4fd521"+
			"0c64da5b338f96e702b3be7d58dc700a54ea59f435aa9a39eba5717d5c"+
			"40928495b1",
		"TUQ57Fbh1crybrDhV6X9SDH95H4oSq4v6p",
		2,
		time.Unix(1523131565, 0),
	),
	withCheckpoints(CheckpointData{
		Checkpoints: []Checkpoint{
			{0, testNetGenesisHash},
		},
		TimeLastCheckpoint:         time.Unix(1522441964, 0),
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         0,
	}),
}
