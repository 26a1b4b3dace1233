// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/bhash/bhashd/chaincfg"
	"github.com/stretchr/testify/require"
)

// testParams returns the parameters of network from a deterministic registry.
func testParams(t *testing.T, network chaincfg.Network) *chaincfg.Params {
	t.Helper()
	reg := chaincfg.NewRegistry(&chaincfg.Config{
		Rand: rand.New(rand.NewSource(1)),
		Now:  func() time.Time { return time.Unix(1600000000, 0) },
	})
	require.NoError(t, reg.Select(network))
	return reg.Params()
}

// TestRunSummary ensures the summary carries the network identity.
func TestRunSummary(t *testing.T) {
	tests := []struct {
		network chaincfg.Network
		want    []string
	}{
		{chaincfg.MainNet, []string{
			"Network:               main\n",
			"Magic:                 0307d305\n",
			"Default port:          17652\n",
			"Genesis hash:          00000d09f909a02625604a050fe37320683c169c764d69182a17223941777334\n",
			"Proof of work limit:   1e0fffff\n",
			"Max money:             6466162 BHASH\n",
			"Masternode collateral: 2000 BHASH\n",
			"PubKeyAddress:         55\n",
			"ExtPublicKey:          0488b21e\n",
			"DNS seed:              bhash-seed1.coinseed.online (coinseed.online)\n",
		}},
		{chaincfg.RegTest, []string{
			"Network:               regtest\n",
			"Default port:          51476\n",
			"Target spacing:        1m0s\n",
			"Target timespan:       24h0m0s (1440 blocks)\n",
			"Mine blocks on demand: true\n",
		}},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		cfg := &config{Checkpoint: noCheckpoint}
		require.NoError(t, run(&buf, cfg, testParams(t, test.network)))
		for _, want := range test.want {
			require.Contains(t, buf.String(), want)
		}
	}
}

// TestRunOptions ensures the genesis dump, checkpoint lookup and address
// classification output.
func TestRunOptions(t *testing.T) {
	params := testParams(t, chaincfg.MainNet)

	var buf bytes.Buffer
	cfg := &config{
		DumpGenesis: true,
		Checkpoint:  0,
		Classify: []string{
			"bCjHuFv7ggRwqouv9M2Wp5nHbZdhKdPGhd",
			"mfWyW5fc9NUj75YAnFgoRLrjxgLDn2MMth",
		},
	}
	require.NoError(t, run(&buf, cfg, params))
	out := buf.String()
	require.Contains(t, out, "Genesis block:         0100000000000000")
	require.Contains(t, out, "Checkpoint -- Height: 0, Hash: "+
		"00000d09f909a02625604a050fe37320683c169c764d69182a17223941777334\n")
	require.Contains(t, out, "bCjHuFv7ggRwqouv9M2Wp5nHbZdhKdPGhd: PubKeyAddress\n")
	require.Contains(t, out, "mfWyW5fc9NUj75YAnFgoRLrjxgLDn2MMth: invalid: ")

	buf.Reset()
	cfg = &config{Checkpoint: 0, UseGoOutput: true}
	require.NoError(t, run(&buf, cfg, params))
	require.Contains(t, buf.String(), "{0, newHashFromStr(\"00000d09f909a02625604"+
		"a050fe37320683c169c764d69182a17223941777334\")},\n")

	buf.Reset()
	cfg = &config{Checkpoint: 7}
	require.NoError(t, run(&buf, cfg, params))
	require.Contains(t, buf.String(), "No checkpoint at height 7\n")

	buf.Reset()
	cfg = &config{Checkpoint: noCheckpoint, Spew: true}
	require.NoError(t, run(&buf, cfg, params))
	require.Contains(t, buf.String(), "DefaultPort: (string) (len=5) \"17652\"")
}
