// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestOverrides are applied on top of the main network defaults to build
// the unit test network.  It keeps the main network magic, genesis block and
// checkpoints.
var unitTestOverrides = []paramsOverride{
	func(p *Params) {
		p.Network = UnitTest
		p.Name = UnitTest.String()
		p.DefaultPort = "51478"
		p.Flags.RequireRPCPassword = false
		p.Flags.MiningRequiresPeers = false
		p.Flags.DefaultConsistencyChecks = true
		p.Flags.AllowMinDifficultyBlocks = false
		p.Flags.MineBlocksOnDemand = true
	},
	withDNSSeeds(),
	withFixedSeeds(),
}

// ModifiableParams is the set of parameters a test harness may change on the
// unit test network.  It is only implemented by the unit test network and is
// obtained through Registry.Modifiable.  The setters are not safe for
// concurrent use.
type ModifiableParams interface {
	SetDefaultConsistencyChecks(enabled bool)
	SetAllowMinDifficultyBlocks(allowed bool)
	SetSkipProofOfWorkCheck(skip bool)
	SetEnforceBlockUpgradeMajority(majority int)
	SetRejectBlockOutdatedMajority(majority int)
	SetToCheckBlockUpgradeMajority(window int)
}

// unitTestParams grants write access to the unit test network parameters.
type unitTestParams struct {
	*Params
}

// Ensure unitTestParams implements the ModifiableParams interface.
var _ ModifiableParams = unitTestParams{}

// SetDefaultConsistencyChecks sets whether internal consistency checks run by
// default.
func (p unitTestParams) SetDefaultConsistencyChecks(enabled bool) {
	p.DefaultConsistencyChecks = enabled
}

// SetAllowMinDifficultyBlocks sets whether minimum difficulty blocks are
// allowed.
func (p unitTestParams) SetAllowMinDifficultyBlocks(allowed bool) {
	p.AllowMinDifficultyBlocks = allowed
}

// SetSkipProofOfWorkCheck sets whether proof of work checks are skipped.
func (p unitTestParams) SetSkipProofOfWorkCheck(skip bool) {
	p.SkipProofOfWorkCheck = skip
}

// SetEnforceBlockUpgradeMajority sets the number of upgraded blocks needed to
// enforce the rules of a new block version.
func (p unitTestParams) SetEnforceBlockUpgradeMajority(majority int) {
	p.EnforceBlockUpgradeMajority = majority
}

// SetRejectBlockOutdatedMajority sets the number of upgraded blocks needed to
// reject outdated block versions.
func (p unitTestParams) SetRejectBlockOutdatedMajority(majority int) {
	p.RejectBlockOutdatedMajority = majority
}

// SetToCheckBlockUpgradeMajority sets the number of recent blocks examined for
// block version upgrades.
func (p unitTestParams) SetToCheckBlockUpgradeMajority(window int) {
	p.ToCheckBlockUpgradeMajority = window
}
