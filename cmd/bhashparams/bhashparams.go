// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bhash/bhashd/chaincfg"
	"github.com/bhash/bhashd/internal/log"
	"github.com/bhash/bhashd/internal/version"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
)

// spewConfig dumps parameters without pointer addresses so the output is
// stable between runs.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatBHash formats an amount in whole coins without an exponent.
func formatBHash(amount btcutil.Amount) string {
	return strconv.FormatFloat(amount.ToBTC(), 'f', -1, 64) + " BHASH"
}

// field writes one labelled line of the summary.
func field(w io.Writer, label, format string, args ...interface{}) {
	fmt.Fprintf(w, "%-23s"+format+"\n", append([]interface{}{label + ":"},
		args...)...)
}

// writeSummary writes the identity of the network described by p.
func writeSummary(w io.Writer, p *chaincfg.Params) {
	magic := p.MessageStart()
	field(w, "Network", "%s", p.Name)
	field(w, "Magic", "%x", magic[:])
	field(w, "Default port", "%s", p.DefaultPort)
	field(w, "Genesis hash", "%v", p.GenesisHash)
	field(w, "Genesis merkle root", "%v", p.GenesisBlock.Header.MerkleRoot)
	field(w, "Proof of work limit", "%08x", p.PowLimitBits)
	field(w, "Target spacing", "%v", p.TargetTimePerBlock)
	field(w, "Target timespan", "%v (%d blocks)", p.TargetTimespan,
		p.Interval())
	field(w, "Coinbase maturity", "%d", p.CoinbaseMaturity)
	field(w, "Max money", "%s", formatBHash(p.MaxMoneyOut))
	field(w, "Masternode collateral", "%s",
		formatBHash(chaincfg.MasternodeCollateral))
	field(w, "Upgrade majorities", "%d/%d of %d",
		p.EnforceBlockUpgradeMajority, p.RejectBlockOutdatedMajority,
		p.ToCheckBlockUpgradeMajority)
	for _, kind := range []chaincfg.Base58Type{
		chaincfg.PubKeyAddress, chaincfg.ScriptAddress, chaincfg.SecretKey,
		chaincfg.ExtPublicKey, chaincfg.ExtSecretKey, chaincfg.ExtCoinType,
	} {
		field(w, kind.String(), "%x", p.Base58Prefix(kind))
	}
	for _, seed := range p.DNSSeeds {
		field(w, "DNS seed", "%s (%s)", seed.Host, seed.Name)
	}
	field(w, "Fixed seeds", "%d", len(p.FixedSeeds))
	if latest := p.Checkpoints.LatestCheckpoint(); latest != nil {
		field(w, "Latest checkpoint", "%d %v", latest.Height, latest.Hash)
	}
	field(w, "Mine blocks on demand", "%v", p.MineBlocksOnDemand)
}

// showCheckpoint displays the checkpoint at the passed height using an output
// format determined by the configuration parameters.  The Go syntax output
// uses the format the chaincfg code expects for checkpoints added to the
// list.
func showCheckpoint(w io.Writer, cfg *config, p *chaincfg.Params) {
	hash, ok := p.Checkpoints.Lookup(cfg.Checkpoint)
	if !ok {
		fmt.Fprintf(w, "No checkpoint at height %d\n", cfg.Checkpoint)
		return
	}
	if cfg.UseGoOutput {
		fmt.Fprintf(w, "{%d, newHashFromStr(\"%v\")},\n", cfg.Checkpoint,
			hash)
		return
	}
	fmt.Fprintf(w, "Checkpoint -- Height: %d, Hash: %v\n", cfg.Checkpoint,
		hash)
}

// run writes everything requested by cfg about the network p to w.
func run(w io.Writer, cfg *config, p *chaincfg.Params) error {
	writeSummary(w, p)

	if cfg.DumpGenesis {
		var buf bytes.Buffer
		if err := p.GenesisBlock.Serialize(&buf); err != nil {
			return err
		}
		field(w, "Genesis block", "%s", hex.EncodeToString(buf.Bytes()))
	}

	if cfg.Checkpoint != noCheckpoint {
		showCheckpoint(w, cfg, p)
	}

	for _, addr := range cfg.Classify {
		kind, err := p.ClassifyAddress(addr)
		if err != nil {
			fmt.Fprintf(w, "%s: invalid: %v\n", addr, err)
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", addr, kind)
	}

	if cfg.Spew {
		spewConfig.Fdump(w, p)
	}
	return nil
}

// bhashparamsMain is the real main function for bhashparams.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func bhashparamsMain() error {
	// Load configuration and parse command line.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Show version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", filepath.Base(os.Args[0]),
			version.String())
		return nil
	}

	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer log.CloseLogRotator()
	}
	log.BhprLog.Infof("Version %s", version.String())

	reg := chaincfg.NewRegistry(nil)
	if err := reg.Select(cfg.network); err != nil {
		log.BhprLog.Errorf("Unable to select network: %v", err)
		return err
	}

	return run(os.Stdout, cfg, reg.Params())
}

func main() {
	if err := bhashparamsMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
