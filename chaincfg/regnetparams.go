// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// regressionPowLimit is the highest proof of work value a block can have for
// the regression test network.  It is the value 2^255 - 1.
var regressionPowLimit = new(big.Int).Rsh(maxUint256, 1)

// regNetOverrides are applied on top of the test network overrides to build
// the regression test network.
//
// The regression test genesis block is regenerated by whoever runs the
// network, so its hash is not verified and its only checkpoint is a
// placeholder.
var regNetOverrides = []paramsOverride{
	withIdentity(RegTest, wire.BitcoinNet(0xa5c3c7a3), "51476"),
	withMinerThreads(1),
	withTiming(time.Hour*24, time.Minute),
	withPowLimit(regressionPowLimit, 0x207fffff),
	withGenesis(func(g *GenesisDescriptor) {
		g.Timestamp = time.Unix(1454124731, 0)
		g.Bits = 0x207fffff
		g.Nonce = 12345
		g.Hash = nil
	}),
	withDNSSeeds(),
	withFixedSeeds(),
	withFlags(Flags{
		RequireRPCPassword:            false,
		MiningRequiresPeers:           false,
		AllowMinDifficultyBlocks:      true,
		DefaultConsistencyChecks:      true,
		RequireStandard:               false,
		MineBlocksOnDemand:            true,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,
	}),
	withCheckpoints(CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("001")},
		},
		TimeLastCheckpoint:         time.Unix(0, 0),
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         0,
	}),
}
