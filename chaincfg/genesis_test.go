// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed clock used by the tests.
var testNow = time.Unix(1600000000, 0)

// newTestRegistry returns a registry built with a fixed clock and a seeded
// random source.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(&Config{
		Rand: rand.New(rand.NewSource(1)),
		Now:  func() time.Time { return testNow },
	})
}

// testEnv returns the build environment matching newTestRegistry.
func testEnv() *buildEnv {
	return &buildEnv{now: testNow, rand: rand.New(rand.NewSource(1))}
}

// publishedHasher returns a BlockHasher that maps the main and test genesis
// headers to their published hashes and hashes every other header with
// double SHA-256.
func publishedHasher() BlockHasher {
	known := make(map[string]chainhash.Hash)
	for _, layers := range [][]paramsOverride{nil, testNetOverrides} {
		p := mainNetDefaults()
		for _, override := range layers {
			override(&p)
		}
		block, err := buildGenesisBlock(&p.Genesis)
		if err != nil {
			panic(err)
		}
		known[headerKey(&block.Header)] = *p.Genesis.Hash
	}

	return func(header *wire.BlockHeader) chainhash.Hash {
		if hash, ok := known[headerKey(header)]; ok {
			return hash
		}
		return header.BlockHash()
	}
}

// headerKey returns the serialized form of a block header.
func headerKey(header *wire.BlockHeader) string {
	var buf bytes.Buffer
	_ = header.Serialize(&buf)
	return buf.String()
}

// TestGenesisBlock tests the genesis block of the main network for validity by
// checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	genesisBlockBytes, _ := hex.DecodeString("01000000000000000000000000" +
		"000000000000000000000000000000000000000000000028c7c5f326b1bfd2b3" +
		"c43c30d0f36653de16d1de3e340d3a63bbda7bcbeb9819a324c95affff0f1eb4" +
		"9104000101000000010000000000000000000000000000000000000000000000" +
		"000000000000000000ffffffff570480c84f3a01044c4e466f7274756e652032" +
		"3031382d30332d31302057687920e2809846756c6c20456d706c6f796d656e74" +
		"e2809920446f65736ee2809974204d65616e2045766572796f6e652048617320" +
		"61204a6f62ffffffff0100ca9a3b000000004341046ac4a45e19e27e2f581a1a" +
		"a9a81985cfd278d8e030f9a57d998edc881e82823a9a2902a564c7d36d89b285" +
		"ebc7ef514be9ca27badd79bc7bdd6ef07090148fa8ac00000000")

	params, err := newTestRegistry(t).ParamsFor(MainNet)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Encode the genesis block to raw bytes.
	var buf bytes.Buffer
	err = params.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check the genesis hash against the published hash.
	if !params.GenesisHash.IsEqual(mainNetGenesisHash) {
		t.Fatalf("TestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v",
			spew.Sdump(params.GenesisHash),
			spew.Sdump(mainNetGenesisHash))
	}
}

// TestGenesisHashes ensures the genesis block of every network hashes to the
// expected values.
func TestGenesisHashes(t *testing.T) {
	const merkleRoot = "1998ebcb7bdabb633a0d343eded116de5366f3d0303cc4b3d2bfb126f3c5c728"

	tests := []struct {
		network Network
		hash    string
	}{
		{MainNet, "00000d09f909a02625604a050fe37320683c169c764d69182a17223941777334"},
		{TestNet, "0000007bd412fc03093d1fafdc21436091d37e417f4003663307c4df920bc1c2"},
		{UnitTest, "00000d09f909a02625604a050fe37320683c169c764d69182a17223941777334"},
	}

	reg := newTestRegistry(t)
	for _, test := range tests {
		t.Run(test.network.String(), func(t *testing.T) {
			params, err := reg.ParamsFor(test.network)
			require.NoError(t, err)

			require.Equal(t, test.hash, params.GenesisHash.String())
			require.Equal(t, test.hash, params.Genesis.Hash.String())
			require.Equal(t, merkleRoot,
				params.GenesisBlock.Header.MerkleRoot.String())
			require.Len(t, params.GenesisBlock.Transactions, 1)
		})
	}
}

// TestRegTestGenesis ensures the regression test genesis block is built from
// its own header fields and left unverified.
func TestRegTestGenesis(t *testing.T) {
	params, err := newTestRegistry(t).ParamsFor(RegTest)
	require.NoError(t, err)

	require.Nil(t, params.Genesis.Hash)
	require.NotNil(t, params.GenesisHash)

	header := params.GenesisBlock.Header
	require.Equal(t, uint32(0x207fffff), header.Bits)
	require.Equal(t, uint32(12345), header.Nonce)
	require.Equal(t, int64(1454124731), header.Timestamp.Unix())
	require.Equal(t, "1998ebcb7bdabb633a0d343eded116de5366f3d0303cc4b3d2bfb126f3c5c728",
		header.MerkleRoot.String())

	hash := params.GenesisBlock.BlockHash()
	require.True(t, params.GenesisHash.IsEqual(&hash))
}

// TestGenesisCoinbaseScript ensures the coinbase signature script pushes the
// tag byte as data rather than as a small integer.
func TestGenesisCoinbaseScript(t *testing.T) {
	desc := mainNetDefaults().Genesis
	script, err := genesisCoinbaseScript(&desc)
	require.NoError(t, err)

	want := "0480c84f3a" + "0104" + "4c4e" + hex.EncodeToString([]byte(desc.Message))
	require.Equal(t, want, hex.EncodeToString(script))
	require.Len(t, []byte(desc.Message), 78)
}

// TestGenesisIntegrityFailures ensures a corrupted genesis descriptor is
// detected when the parameters are built and that the fatal path panics.
func TestGenesisIntegrityFailures(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *GenesisDescriptor)
		code    ErrorCode
	}{{
		name:    "altered nonce",
		corrupt: func(g *GenesisDescriptor) { g.Nonce++ },
		code:    ErrGenesisHashMismatch,
	}, {
		name:    "altered time",
		corrupt: func(g *GenesisDescriptor) { g.Timestamp = g.Timestamp.Add(time.Second) },
		code:    ErrGenesisHashMismatch,
	}, {
		name:    "altered message",
		corrupt: func(g *GenesisDescriptor) { g.Message += "!" },
		code:    ErrGenesisMerkleMismatch,
	}, {
		name:    "altered output value",
		corrupt: func(g *GenesisDescriptor) { g.OutputValue++ },
		code:    ErrGenesisMerkleMismatch,
	}, {
		name:    "missing merkle root",
		corrupt: func(g *GenesisDescriptor) { g.MerkleRoot = nil },
		code:    ErrGenesisMerkleMismatch,
	}}

	env := testEnv()
	env.hasher = publishedHasher()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			corrupt := []paramsOverride{withGenesis(test.corrupt)}

			_, err := buildParams(env, corrupt)
			require.Error(t, err)
			require.True(t, IsErrorCode(err, test.code),
				"unexpected error: %v", err)

			require.Panics(t, func() {
				mustBuildParams(env, corrupt)
			})
		})
	}
}

// TestGenesisBlockHasher ensures the configured header hash function is used
// to recompute every genesis hash and that a hash function which does not
// reproduce the published hashes stops registry construction.
func TestGenesisBlockHasher(t *testing.T) {
	reg := NewRegistry(&Config{
		Rand:        rand.New(rand.NewSource(1)),
		Now:         func() time.Time { return testNow },
		BlockHasher: publishedHasher(),
	})

	main, err := reg.ParamsFor(MainNet)
	require.NoError(t, err)
	require.Equal(t, mainNetGenesisHash, main.GenesisHash)

	test, err := reg.ParamsFor(TestNet)
	require.NoError(t, err)
	require.Equal(t, testNetGenesisHash, test.GenesisHash)

	// The regression test genesis has no published hash, so it takes
	// whatever the hasher returns.
	var calls int
	regHash := chainhash.Hash{0x01}
	env := testEnv()
	env.hasher = func(*wire.BlockHeader) chainhash.Hash {
		calls++
		return regHash
	}
	regtest, err := buildParams(env, testNetOverrides, regNetOverrides)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, regHash, *regtest.GenesisHash)

	// Without a hasher, an altered nonce only changes the header.  The
	// published hash is kept.
	params, err := buildParams(testEnv(), []paramsOverride{
		withGenesis(func(g *GenesisDescriptor) { g.Nonce++ }),
	})
	require.NoError(t, err)
	require.Equal(t, mainNetGenesisHash, params.GenesisHash)

	// The wire double SHA-256 header hash does not produce the published
	// hashes.
	doubleSHA := func(header *wire.BlockHeader) chainhash.Hash {
		return header.BlockHash()
	}
	require.Panics(t, func() {
		NewRegistry(&Config{
			Rand:        rand.New(rand.NewSource(1)),
			Now:         func() time.Time { return testNow },
			BlockHasher: doubleSHA,
		})
	})
	_, err = buildParams(&buildEnv{now: testNow, hasher: doubleSHA})
	require.True(t, IsErrorCode(err, ErrGenesisHashMismatch),
		"unexpected error: %v", err)
}
