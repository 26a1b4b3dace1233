// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"
)

// Config holds the inputs of network parameter construction that are not
// compiled in.
type Config struct {
	// Rand stamps the fixed seeds.  A time seeded source is used when nil.
	Rand RandSource

	// Now returns the current time.  time.Now is used when nil.
	Now func() time.Time

	// BlockHasher recomputes the genesis block hashes so they can be checked
	// against the published values.  When nil the published hashes are used
	// as is and only the merkle roots are verified.
	BlockHasher BlockHasher
}

// Registry holds the parameters of every known network and the network that
// is active for the process.  A Registry is created once at startup and a
// single call to Select activates one network.  Params may then be called
// concurrently from any number of goroutines.
type Registry struct {
	profiles [numNetworks]*Params
	active   atomic.Pointer[Params]
}

// NewRegistry builds the parameters of every network.  It panics when the
// compiled in parameters are inconsistent, for example when a genesis block
// does not hash to its expected value under cfg.BlockHasher.
func NewRegistry(cfg *Config) *Registry {
	env := &buildEnv{now: time.Now(), rand: nil}
	if cfg != nil && cfg.Now != nil {
		env.now = cfg.Now()
	}
	if cfg != nil && cfg.Rand != nil {
		env.rand = cfg.Rand
	} else {
		env.rand = rand.New(rand.NewSource(env.now.UnixNano()))
	}
	if cfg != nil {
		env.hasher = cfg.BlockHasher
	}

	var r Registry
	r.profiles[MainNet] = mustBuildParams(env)
	r.profiles[TestNet] = mustBuildParams(env, testNetOverrides)
	r.profiles[RegTest] = mustBuildParams(env, testNetOverrides, regNetOverrides)
	r.profiles[UnitTest] = mustBuildParams(env, unitTestOverrides)
	return &r
}

// Select makes the passed network the active one.  Selecting the already
// active network again is a no-op.  Once a network is active, selecting a
// different one returns ErrAlreadySelected.
func (r *Registry) Select(network Network) error {
	p, err := r.ParamsFor(network)
	if err != nil {
		return err
	}

	if r.active.CompareAndSwap(nil, p) {
		log.Infof("Selected %s network (magic %08x, port %s)", p.Name,
			uint32(p.Net), p.DefaultPort)
		return nil
	}

	active := r.active.Load()
	if active == p {
		return nil
	}
	str := fmt.Sprintf("cannot select %s network, %s network is already "+
		"active", p.Name, active.Name)
	return paramsError(ErrAlreadySelected, str)
}

// IsSelected returns whether a network has been selected.
func (r *Registry) IsSelected() bool {
	return r.active.Load() != nil
}

// Params returns the parameters of the active network.  It panics when no
// network has been selected.
func (r *Registry) Params() *Params {
	p := r.active.Load()
	if p == nil {
		err := paramsError(ErrNotSelected, "network parameters read "+
			"before a network was selected")
		log.Critical(err)
		panic(err)
	}
	return p
}

// ParamsFor returns the parameters of the passed network whether or not it is
// active.
func (r *Registry) ParamsFor(network Network) (*Params, error) {
	if network < 0 || network >= numNetworks {
		str := fmt.Sprintf("unknown network %d", int(network))
		return nil, paramsError(ErrUnknownNetwork, str)
	}
	return r.profiles[network], nil
}

// Modifiable returns write access to the unit test network parameters.  It
// panics unless the unit test network is active.
func (r *Registry) Modifiable() ModifiableParams {
	p := r.Params()
	if p.Network != UnitTest {
		str := fmt.Sprintf("parameters of the %s network are not "+
			"modifiable", p.Name)
		err := paramsError(ErrNotModifiable, str)
		log.Critical(err)
		panic(err)
	}
	return unitTestParams{p}
}
