// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bhash/bhashd/chaincfg"
	"github.com/bhash/bhashd/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "bhashparams.log"

	// noCheckpoint is the checkpoint height meaning no lookup was
	// requested.
	noCheckpoint = -1
)

var (
	bhashHomeDir  = btcutil.AppDataDir("bhashparams", false)
	defaultLogDir = filepath.Join(bhashHomeDir, defaultLogDirname)
)

// config defines the configuration options for bhashparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool     `short:"V" long:"version" description:"Display version information and exit"`
	LogDir        string   `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool     `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	TestNet       bool     `long:"testnet" description:"Use the test network"`
	RegTest       bool     `long:"regtest" description:"Use the regression test network"`
	UnitTest      bool     `long:"unittest" description:"Use the unit test network"`
	DumpGenesis   bool     `long:"dumpgenesis" description:"Display the serialized genesis block as hex"`
	Checkpoint    int32    `short:"c" long:"checkpoint" description:"Display the checkpoint at the given height"`
	UseGoOutput   bool     `short:"g" long:"gooutput" description:"Display the checkpoint using Go syntax that is ready to insert into the chaincfg checkpoint list"`
	Classify      []string `long:"classify" description:"Classify a base58check encoded address or key (may be repeated)"`
	Spew          bool     `long:"spew" description:"Dump every parameter of the selected network"`

	// network is the network selected by the network flags.
	network chaincfg.Network
}

// cleanAndExpandPath expands environement variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(bhashHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options
//  3. Select the network from the network flags
//  4. Validate the remaining options
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Checkpoint: noCheckpoint,
		network:    chaincfg.MainNet,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	// Multiple networks can't be selected simultaneously.  Count number of
	// network flags passed and assign the network while we're at it.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet {
		numNets++
		cfg.network = chaincfg.TestNet
	}
	if cfg.RegTest {
		numNets++
		cfg.network = chaincfg.RegTest
	}
	if cfg.UnitTest {
		numNets++
		cfg.network = chaincfg.UnitTest
	}
	if numNets > 1 {
		str := "%s: the testnet, regtest, and unittest params can't be " +
			"used together -- choose one of the three"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.network.String())

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the checkpoint height.
	if cfg.Checkpoint < noCheckpoint {
		str := "%s: the specified checkpoint height is negative -- " +
			"parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.Checkpoint)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.UseGoOutput && cfg.Checkpoint == noCheckpoint {
		str := "%s: --gooutput requires --checkpoint"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
