// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the network parameters for the BHash networks.

Each network (main, test, regression test and unit test) is described by a
Params value holding everything that makes the network distinct: the
message start magic, default port, proof of work limits, block timing,
address encoding prefixes, checkpoints, seed peers and the genesis block.

The main network parameters are the base set.  Every other network is
produced by applying an ordered list of overrides on top of a fresh copy of
that base, so the four profiles never reference each other once built.
Building a profile constructs its genesis block from a fixed descriptor and
verifies the resulting merkle root against the hard-coded value.  The header
hash function belongs to the consensus code, so the block hash is checked
against the published hash only when Config.BlockHasher supplies one.  A
mismatch means the compiled constants are inconsistent and the build panics.

Parameters are accessed through a Registry.  A registry is created once at
startup and exactly one network is then selected on it:

	reg := chaincfg.NewRegistry(nil)
	if err := reg.Select(chaincfg.TestNet); err != nil {
		// handle error
	}
	params := reg.Params()
	fmt.Println(params.DefaultPort)

Reading the active parameters before a network has been selected panics.
The unit test network additionally exposes a small set of setters through
Registry.Modifiable, which panics when any other network is active.
*/
package chaincfg
