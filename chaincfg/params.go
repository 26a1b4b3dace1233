// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is the value 2^256 - 1, the all ones 256-bit value the
	// proof of work limits are derived from.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// MasternodeCollateral is the amount that must be held in a single output
// for a masternode to be eligible for payments.  It is the same on every
// network.
const MasternodeCollateral = btcutil.Amount(2000 * btcutil.SatoshiPerBitcoin)

// Network identifies one of the known BHash networks.
type Network int

// These constants define the known networks.
const (
	// MainNet is the main network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the regression test network.  Its genesis block is
	// trivially minable and blocks are generated on demand.
	RegTest

	// UnitTest is the unit test network.  It is the main network with
	// relaxed consistency flags, no seeds and a handful of settable
	// parameters.
	UnitTest

	// numNetworks is the number of known networks.  It must be last.
	numNetworks
)

// networkNames maps networks to the human-readable network identifiers.
var networkNames = [numNetworks]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the human-readable identifier of the network.
func (n Network) String() string {
	if n < 0 || n >= numNetworks {
		return fmt.Sprintf("Unknown Network (%d)", int(n))
	}
	return networkNames[n]
}

// NetworkFromString returns the network identified by the passed
// human-readable identifier.
func NetworkFromString(name string) (Network, error) {
	for n, s := range networkNames {
		if s == name {
			return Network(n), nil
		}
	}
	str := fmt.Sprintf("unknown network %q", name)
	return 0, paramsError(ErrUnknownNetwork, str)
}

// Base58Type identifies the kind of data a base58 prefix introduces.
type Base58Type int

// These constants define the address and key kinds with a base58 prefix.
const (
	// PubKeyAddress prefixes pay-to-pubkey-hash addresses.
	PubKeyAddress Base58Type = iota

	// ScriptAddress prefixes pay-to-script-hash addresses.
	ScriptAddress

	// SecretKey prefixes WIF encoded private keys.
	SecretKey

	// ExtPublicKey prefixes BIP32 extended public keys.
	ExtPublicKey

	// ExtSecretKey prefixes BIP32 extended private keys.
	ExtSecretKey

	// ExtCoinType is the hardened BIP44 coin type of the network.  It is
	// not an address prefix and is never matched when decoding.
	ExtCoinType

	// numBase58Types is the number of base58 prefix kinds.  It must be
	// last.
	numBase58Types
)

// base58TypeStrings maps base58 types to their names for pretty printing.
var base58TypeStrings = [numBase58Types]string{
	PubKeyAddress: "PubKeyAddress",
	ScriptAddress: "ScriptAddress",
	SecretKey:     "SecretKey",
	ExtPublicKey:  "ExtPublicKey",
	ExtSecretKey:  "ExtSecretKey",
	ExtCoinType:   "ExtCoinType",
}

// String returns the Base58Type as a human-readable name.
func (t Base58Type) String() string {
	if t < 0 || t >= numBase58Types {
		return fmt.Sprintf("Unknown Base58Type (%d)", int(t))
	}
	return base58TypeStrings[t]
}

// addressKinds are the base58 types that may start an encoded string.  The
// kind of a decoded string must be unambiguous among these.
var addressKinds = []Base58Type{
	PubKeyAddress,
	ScriptAddress,
	SecretKey,
	ExtPublicKey,
	ExtSecretKey,
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the operator of the seed.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// Flags groups the boolean switches that alter node behaviour per network.
type Flags struct {
	// RequireRPCPassword reports whether the RPC server refuses to start
	// without credentials.
	RequireRPCPassword bool

	// MiningRequiresPeers reports whether the miner waits for peers.
	MiningRequiresPeers bool

	// AllowMinDifficultyBlocks reports whether blocks may fall back to
	// the minimum difficulty.
	AllowMinDifficultyBlocks bool

	// DefaultConsistencyChecks reports whether expensive internal
	// consistency checks run by default.
	DefaultConsistencyChecks bool

	// RequireStandard reports whether only standard transactions are
	// relayed and mined.
	RequireStandard bool

	// MineBlocksOnDemand reports whether blocks are only produced on
	// request instead of by continuous mining.
	MineBlocksOnDemand bool

	// SkipProofOfWorkCheck reports whether block proof of work checks are
	// skipped.
	SkipProofOfWorkCheck bool

	// TestnetToBeDeprecatedFieldRPC reports whether RPC results still
	// carry the deprecated testnet field.
	TestnetToBeDeprecatedFieldRPC bool

	// HeadersFirstSyncingActive reports whether headers first sync is
	// used.
	HeadersFirstSyncingActive bool
}

// Params defines a BHash network by its parameters.  These parameters may be
// used by BHash applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Params values are built once by a Registry and must be treated as read
// only.  The only exception is the unit test network, which may be changed
// through the ModifiableParams returned by Registry.Modifiable.
type Params struct {
	// Network identifies which of the known networks these parameters
	// describe.
	Network Network

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hard-coded fallback peers, stamped with a last
	// seen time between one and two weeks in the past.
	FixedSeeds []*wire.NetAddress

	// AlertPubKey is the serialized public key that signs network alerts.
	AlertPubKey []byte

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaxReorganizationDepth is the deepest reorganization the node will
	// accept.
	MaxReorganizationDepth int32

	// MinerThreads is the default number of mining threads.  Zero means
	// one per CPU.
	MinerThreads int

	// LastPOWBlock is the last height at which proof of work blocks are
	// accepted.  math.MaxInt32 means proof of work never ends.
	LastPOWBlock int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16

	// ModifierUpdateBlock is the height at which the stake modifier
	// calculation changes.
	ModifierUpdateBlock int32

	// MaxMoneyOut is the total money supply cap.
	MaxMoneyOut btcutil.Amount

	// EnforceBlockUpgradeMajority, RejectBlockOutdatedMajority and
	// ToCheckBlockUpgradeMajority control block version upgrades: once
	// EnforceBlockUpgradeMajority of the last ToCheckBlockUpgradeMajority
	// blocks carry a new version its rules are enforced on new blocks, and
	// once RejectBlockOutdatedMajority do, older versions are rejected.
	EnforceBlockUpgradeMajority int
	RejectBlockOutdatedMajority int
	ToCheckBlockUpgradeMajority int

	// MasternodeCountDrift is how far the masternode count may drift
	// before payments are considered invalid.
	MasternodeCountDrift int

	// StartMasternodePayments is the time masternode payments begin.
	StartMasternodePayments time.Time

	// PoolMaxTransactions is the maximum number of transactions in one
	// obfuscation pool session.
	PoolMaxTransactions int

	// SporkKey is the hex encoded public key that signs spork messages.
	SporkKey string

	// PoolDummyAddress is the address used by the obfuscation pool for
	// dummy outputs.
	PoolDummyAddress string

	// Base58Prefixes holds the prefix of every base58 encoded kind.
	Base58Prefixes [numBase58Types][]byte

	// Genesis is the fixed description the genesis block is built from.
	Genesis GenesisDescriptor

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Checkpoints holds the known good blocks of the chain.
	Checkpoints *CheckpointTable

	// Flags holds the per-network behaviour switches.
	Flags

	// checkpointData and fixedSeedSpecs are the raw inputs the
	// checkpoint table and fixed seeds are built from.
	checkpointData CheckpointData
	fixedSeedSpecs []SeedSpec6
}

// MessageStart returns the network magic in the order it appears on the
// wire.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// Interval returns the number of blocks between difficulty retargets.
func (p *Params) Interval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// PoWUnbounded returns whether proof of work blocks are accepted at every
// height.
func (p *Params) PoWUnbounded() bool {
	return p.LastPOWBlock == math.MaxInt32
}

// Base58Prefix returns a copy of the prefix for the passed base58 kind.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= numBase58Types {
		return nil
	}
	return append([]byte(nil), p.Base58Prefixes[t]...)
}

// ParseAlertPubKey returns the alert signing key.
func (p *Params) ParseAlertPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.AlertPubKey)
}

// ParseSporkPubKey returns the spork signing key.
func (p *Params) ParseSporkPubKey() (*btcec.PublicKey, error) {
	key, err := hex.DecodeString(p.SporkKey)
	if err != nil {
		return nil, err
	}
	return btcec.ParsePubKey(key)
}

// paramsOverride changes a subset of the fields of a Params value that is
// being built.
type paramsOverride func(p *Params)

func withIdentity(network Network, net wire.BitcoinNet, port string) paramsOverride {
	return func(p *Params) {
		p.Network = network
		p.Name = network.String()
		p.Net = net
		p.DefaultPort = port
	}
}

func withAlertPubKey(key []byte) paramsOverride {
	return func(p *Params) {
		p.AlertPubKey = append([]byte(nil), key...)
	}
}

func withPowLimit(limit *big.Int, bits uint32) paramsOverride {
	return func(p *Params) {
		p.PowLimit = new(big.Int).Set(limit)
		p.PowLimitBits = bits
	}
}

func withTiming(timespan, perBlock time.Duration) paramsOverride {
	return func(p *Params) {
		p.TargetTimespan = timespan
		p.TargetTimePerBlock = perBlock
	}
}

func withMinerThreads(threads int) paramsOverride {
	return func(p *Params) {
		p.MinerThreads = threads
	}
}

func withLastPOWBlock(height int32) paramsOverride {
	return func(p *Params) {
		p.LastPOWBlock = height
	}
}

func withCoinbaseMaturity(maturity uint16) paramsOverride {
	return func(p *Params) {
		p.CoinbaseMaturity = maturity
	}
}

func withMaxMoneyOut(max btcutil.Amount) paramsOverride {
	return func(p *Params) {
		p.MaxMoneyOut = max
	}
}

func withBlockUpgradeMajorities(enforce, reject, toCheck int) paramsOverride {
	return func(p *Params) {
		p.EnforceBlockUpgradeMajority = enforce
		p.RejectBlockOutdatedMajority = reject
		p.ToCheckBlockUpgradeMajority = toCheck
	}
}

func withBase58Prefixes(prefixes [numBase58Types][]byte) paramsOverride {
	return func(p *Params) {
		for t := range prefixes {
			p.Base58Prefixes[t] = append([]byte(nil), prefixes[t]...)
		}
	}
}

func withDNSSeeds(seeds ...DNSSeed) paramsOverride {
	return func(p *Params) {
		p.DNSSeeds = append([]DNSSeed(nil), seeds...)
	}
}

func withFixedSeeds(specs ...SeedSpec6) paramsOverride {
	return func(p *Params) {
		p.fixedSeedSpecs = append([]SeedSpec6(nil), specs...)
	}
}

func withGenesis(apply func(g *GenesisDescriptor)) paramsOverride {
	return func(p *Params) {
		apply(&p.Genesis)
	}
}

func withCheckpoints(data CheckpointData) paramsOverride {
	return func(p *Params) {
		p.checkpointData = data
	}
}

func withFlags(flags Flags) paramsOverride {
	return func(p *Params) {
		p.Flags = flags
	}
}

func withMasternodes(sporkKey, dummyAddress string, poolMaxTxs int,
	startPayments time.Time) paramsOverride {

	return func(p *Params) {
		p.SporkKey = sporkKey
		p.PoolDummyAddress = dummyAddress
		p.PoolMaxTransactions = poolMaxTxs
		p.StartMasternodePayments = startPayments
	}
}

// buildEnv carries the inputs of profile construction that are not
// compiled in.
type buildEnv struct {
	now    time.Time
	rand   RandSource
	hasher BlockHasher
}

// buildParams produces a fully populated network profile.  It starts from a
// fresh copy of the main network defaults, applies each layer of overrides in
// order and then derives the genesis block, checkpoint table and fixed seeds
// from the result.  Any integrity failure of the hard-coded values is
// returned as a ParamsError.
func buildParams(env *buildEnv, layers ...[]paramsOverride) (*Params, error) {
	p := mainNetDefaults()
	for _, layer := range layers {
		for _, override := range layer {
			override(&p)
		}
	}

	block, err := buildGenesisBlock(&p.Genesis)
	if err != nil {
		return nil, err
	}
	genesisHash, err := verifyGenesisBlock(block, &p.Genesis, env.hasher)
	if err != nil {
		return nil, fmt.Errorf("%s network: %w", p.Name, err)
	}
	p.GenesisBlock = block
	p.GenesisHash = &genesisHash

	p.Checkpoints, err = newCheckpointTable(p.checkpointData)
	if err != nil {
		return nil, fmt.Errorf("%s network: %w", p.Name, err)
	}

	p.FixedSeeds = AssembleSeeds(p.fixedSeedSpecs, env.now, env.rand)

	if err := validateParams(&p); err != nil {
		return nil, fmt.Errorf("%s network: %w", p.Name, err)
	}

	log.Debugf("Built %s network parameters (genesis %v, %d checkpoints, "+
		"%d fixed seeds)", p.Name, p.GenesisHash,
		len(p.Checkpoints.Checkpoints()), len(p.FixedSeeds))

	return &p, nil
}

// mustBuildParams performs the same function as buildParams except it panics
// if there is an error.  The only way it can panic is if the hard-coded
// parameters are inconsistent, which must never be allowed to run.
func mustBuildParams(env *buildEnv, layers ...[]paramsOverride) *Params {
	p, err := buildParams(env, layers...)
	if err != nil {
		log.Criticalf("Invalid network parameters: %v", err)
		panic(err)
	}
	return p
}

// validateParams checks the hard-coded values of a profile for consistency.
func validateParams(p *Params) error {
	if bits := blockchain.BigToCompact(p.PowLimit); bits != p.PowLimitBits {
		str := fmt.Sprintf("proof of work limit %064x has compact form "+
			"%08x, but the hard-coded bits are %08x", p.PowLimit, bits,
			p.PowLimitBits)
		return paramsError(ErrPowLimitMismatch, str)
	}

	if err := validateBase58Prefixes(p); err != nil {
		return err
	}

	keys := []struct {
		name string
		key  func() error
	}{
		{"alert", func() error { _, err := p.ParseAlertPubKey(); return err }},
		{"spork", func() error { _, err := p.ParseSporkPubKey(); return err }},
		{"genesis output", func() error {
			_, err := btcec.ParsePubKey(p.Genesis.OutputPubKey)
			return err
		}},
	}
	for _, k := range keys {
		if err := k.key(); err != nil {
			str := fmt.Sprintf("invalid %s public key: %v", k.name, err)
			return paramsError(ErrInvalidPubKey, str)
		}
	}

	return nil
}

// validateBase58Prefixes ensures every address kind has a prefix and that the
// kind of a decoded string is never ambiguous.
func validateBase58Prefixes(p *Params) error {
	for i, kind := range addressKinds {
		prefix := p.Base58Prefixes[kind]
		if len(prefix) == 0 {
			str := fmt.Sprintf("missing %v prefix", kind)
			return paramsError(ErrAmbiguousPrefix, str)
		}
		for _, other := range addressKinds[i+1:] {
			otherPrefix := p.Base58Prefixes[other]
			if bytes.HasPrefix(prefix, otherPrefix) ||
				bytes.HasPrefix(otherPrefix, prefix) {

				str := fmt.Sprintf("%v prefix %x collides with %v "+
					"prefix %x", kind, prefix, other, otherPrefix)
				return paramsError(ErrAmbiguousPrefix, str)
			}
		}
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and panics on error.  It must only
// be called with hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
