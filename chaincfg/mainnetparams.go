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

// genesisMerkleRoot is the merkle root of the genesis coinbase.  The coinbase
// is identical on every network.
var genesisMerkleRoot = newHashFromStr("1998ebcb7bdabb633a0d343eded116de5366f3d0303cc4b3d2bfb126f3c5c728")

// genesisOutputPubKey is the key the genesis coinbase output pays to.
var genesisOutputPubKey = hexDecode("046ac4a45e19e27e2f581a1aa9a81985cfd2" +
	"78d8e030f9a57d998edc881e82823a9a2902a564c7d36d89b285ebc7ef514be9ca2" +
	"7badd79bc7bdd6ef07090148fa8")

// mainPowLimit is the highest proof of work value a block can have for the
// main network.  It is the value 2^236 - 1.
var mainPowLimit = new(big.Int).Rsh(maxUint256, 20)

// mainNetGenesisHash is the hash of the first block in the block chain for the
// main network.
var mainNetGenesisHash = newHashFromStr("00000d09f909a02625604a050fe37320683c169c764d69182a17223941777334")

// mainNetCheckpoints holds the checkpoint data of the main network.  The unit
// test network shares it.
func mainNetCheckpoints() CheckpointData {
	return CheckpointData{
		Checkpoints: []Checkpoint{
			{0, mainNetGenesisHash},
		},
		TimeLastCheckpoint:         time.Unix(1522441864, 0),
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         0,
	}
}

// mainNetDefaults returns the parameters of the main network before genesis,
// checkpoints and seeds are derived.  Every other network is built by applying
// overrides to a fresh copy of this value.
func mainNetDefaults() Params {
	return Params{
		Network:     MainNet,
		Name:        MainNet.String(),
		Net:         wire.BitcoinNet(0x05d30703),
		DefaultPort: "17652",
		DNSSeeds: []DNSSeed{
			{"coinseed.online", "bhash-seed1.coinseed.online"},
			{"coinseed.online", "bhash-seed2.coinseed.online"},
		},

		// The main network has no published seed table, so the fixed
		// seed list is empty and peers are discovered through the DNS
		// seeds only.
		fixedSeedSpecs: nil,

		AlertPubKey: hexDecode("04467062e8e67181af11bdd0619193a35e963081" +
			"8def50e4e9edba21ccf06994c3d749d8a5249af13dd0175a781d7560bef8" +
			"19895db49809e37c481195fdf187a6"),

		// Chain parameters
		PowLimit:               new(big.Int).Set(mainPowLimit),
		PowLimitBits:           0x1e0fffff,
		TargetTimespan:         time.Minute * 3,
		TargetTimePerBlock:     time.Minute * 3,
		MaxReorganizationDepth: 100,
		MinerThreads:           0,
		LastPOWBlock:           math.MaxInt32,
		CoinbaseMaturity:       100,
		ModifierUpdateBlock:    1,
		MaxMoneyOut:            6466162 * btcutil.SatoshiPerBitcoin,

		// Block version upgrades
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,

		// Masternodes
		MasternodeCountDrift:    4,
		StartMasternodePayments: time.Unix(1523131555, 0),
		PoolMaxTransactions:     3,
		SporkKey: "04c7bf3924d056ebd1c7f5d11d22bb19ba9c04699f9a90c5791998" +
			"96cb316278d3e37b5e138325f2112f91269d07792d3b253132c931c707" +
			"21edb8fb5c97a0027c",
		PoolDummyAddress: "bTcz4yxx67MHjMcyTDET4qXv3drpqYCRhd",

		// Address encoding magics.  Addresses start with b and script
		// addresses with 4.  The BIP44 coin type is 9.
		Base58Prefixes: [numBase58Types][]byte{
			PubKeyAddress: {85},
			ScriptAddress: {8},
			SecretKey:     {196},
			ExtPublicKey:  {0x04, 0x88, 0xb2, 0x1e},
			ExtSecretKey:  {0x04, 0x88, 0xad, 0xe4},
			ExtCoinType:   {0x80, 0x00, 0x00, 0x09},
		},

		Genesis: GenesisDescriptor{
			CoinbaseTime: 978307200,
			CoinbaseTag:  4,
			Message: "Fortune 2018-03-10 Why ‘Full Employment’ " +
				"Doesn’t Mean Everyone Has a Job",
			OutputValue:  10 * btcutil.SatoshiPerBitcoin,
			OutputPubKey: append([]byte(nil), genesisOutputPubKey...),
			Version:      1,
			Timestamp:    time.Unix(1523131555, 0),
			Bits:         0x1e0fffff,
			Nonce:        299444,
			MerkleRoot:   genesisMerkleRoot,
			Hash:         mainNetGenesisHash,
		},

		checkpointData: mainNetCheckpoints(),

		Flags: Flags{
			RequireRPCPassword:            false,
			MiningRequiresPeers:           true,
			AllowMinDifficultyBlocks:      false,
			DefaultConsistencyChecks:      false,
			RequireStandard:               true,
			MineBlocksOnDemand:            false,
			SkipProofOfWorkCheck:          false,
			TestnetToBeDeprecatedFieldRPC: false,
			HeadersFirstSyncingActive:     false,
		},
	}
}
