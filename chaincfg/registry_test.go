// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireParamsPanic asserts that f panics with a ParamsError carrying code.
func requireParamsPanic(t *testing.T, code ErrorCode, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, IsErrorCode(err, code), "unexpected panic: %v", err)
	}()
	f()
}

// TestParamsBeforeSelect ensures reading the active parameters before a
// network is selected panics.
func TestParamsBeforeSelect(t *testing.T) {
	reg := newTestRegistry(t)
	require.False(t, reg.IsSelected())
	requireParamsPanic(t, ErrNotSelected, func() { reg.Params() })
	requireParamsPanic(t, ErrNotSelected, func() { reg.Modifiable() })
}

// TestSelect ensures selection activates a network once.
func TestSelect(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.Select(MainNet))
	require.True(t, reg.IsSelected())

	p := reg.Params()
	require.Equal(t, MainNet, p.Network)
	require.Equal(t, "17652", p.DefaultPort)
	require.Equal(t, []byte{85}, p.Base58Prefix(PubKeyAddress))

	// Selecting the active network again is a no-op.
	require.NoError(t, reg.Select(MainNet))
	require.Same(t, p, reg.Params())

	// Selecting another network fails and leaves the active one alone.
	err := reg.Select(TestNet)
	require.True(t, IsErrorCode(err, ErrAlreadySelected), "got %v", err)
	require.Same(t, p, reg.Params())

	err = reg.Select(Network(42))
	require.True(t, IsErrorCode(err, ErrUnknownNetwork), "got %v", err)

	var perr ParamsError
	require.True(t, errors.As(reg.Select(RegTest), &perr))
	require.Equal(t, ErrAlreadySelected, perr.ErrorCode)
}

// TestSelectConcurrent ensures only one of several racing selections wins.
func TestSelectConcurrent(t *testing.T) {
	reg := newTestRegistry(t)

	var wg sync.WaitGroup
	results := make([]error, numNetworks)
	for n := MainNet; n < numNetworks; n++ {
		wg.Add(1)
		go func(n Network) {
			defer wg.Done()
			results[n] = reg.Select(n)
		}(n)
	}
	wg.Wait()

	var winners int
	for n, err := range results {
		if err == nil {
			winners++
			require.Equal(t, Network(n), reg.Params().Network)
			continue
		}
		require.True(t, IsErrorCode(err, ErrAlreadySelected))
	}
	require.Equal(t, 1, winners)
}

// TestModifiableOnlyUnitTest ensures the modifiable parameters are only
// available while the unit test network is active.
func TestModifiableOnlyUnitTest(t *testing.T) {
	for _, network := range []Network{MainNet, TestNet, RegTest} {
		reg := newTestRegistry(t)
		require.NoError(t, reg.Select(network))
		requireParamsPanic(t, ErrNotModifiable, func() { reg.Modifiable() })
	}
}

// TestModifiableSetters ensures each setter changes exactly its own field.
func TestModifiableSetters(t *testing.T) {
	tests := []struct {
		name  string
		set   func(m ModifiableParams)
		check func(t *testing.T, p *Params)
	}{{
		name: "consistency checks",
		set:  func(m ModifiableParams) { m.SetDefaultConsistencyChecks(false) },
		check: func(t *testing.T, p *Params) {
			require.False(t, p.DefaultConsistencyChecks)
		},
	}, {
		name: "min difficulty",
		set:  func(m ModifiableParams) { m.SetAllowMinDifficultyBlocks(true) },
		check: func(t *testing.T, p *Params) {
			require.True(t, p.AllowMinDifficultyBlocks)
		},
	}, {
		name: "skip pow",
		set:  func(m ModifiableParams) { m.SetSkipProofOfWorkCheck(true) },
		check: func(t *testing.T, p *Params) {
			require.True(t, p.SkipProofOfWorkCheck)
		},
	}, {
		name: "enforce majority",
		set:  func(m ModifiableParams) { m.SetEnforceBlockUpgradeMajority(1) },
		check: func(t *testing.T, p *Params) {
			require.Equal(t, 1, p.EnforceBlockUpgradeMajority)
		},
	}, {
		name: "reject majority",
		set:  func(m ModifiableParams) { m.SetRejectBlockOutdatedMajority(2) },
		check: func(t *testing.T, p *Params) {
			require.Equal(t, 2, p.RejectBlockOutdatedMajority)
		},
	}, {
		name: "check window",
		set:  func(m ModifiableParams) { m.SetToCheckBlockUpgradeMajority(3) },
		check: func(t *testing.T, p *Params) {
			require.Equal(t, 3, p.ToCheckBlockUpgradeMajority)
		},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			require.NoError(t, reg.Select(UnitTest))

			p := reg.Params()
			before := *p
			test.set(reg.Modifiable())
			test.check(t, p)

			// Restore the settable fields and ensure nothing else
			// moved.
			after := *p
			after.Flags.DefaultConsistencyChecks = before.DefaultConsistencyChecks
			after.Flags.AllowMinDifficultyBlocks = before.AllowMinDifficultyBlocks
			after.Flags.SkipProofOfWorkCheck = before.SkipProofOfWorkCheck
			after.EnforceBlockUpgradeMajority = before.EnforceBlockUpgradeMajority
			after.RejectBlockOutdatedMajority = before.RejectBlockOutdatedMajority
			after.ToCheckBlockUpgradeMajority = before.ToCheckBlockUpgradeMajority
			require.Equal(t, before, after)
		})
	}
}

// TestModifiableIsolated ensures setters on one registry do not leak into
// another.
func TestModifiableIsolated(t *testing.T) {
	a := newTestRegistry(t)
	require.NoError(t, a.Select(UnitTest))
	a.Modifiable().SetSkipProofOfWorkCheck(true)
	a.Modifiable().SetEnforceBlockUpgradeMajority(1)

	b := newTestRegistry(t)
	require.NoError(t, b.Select(UnitTest))
	require.False(t, b.Params().SkipProofOfWorkCheck)
	require.Equal(t, 750, b.Params().EnforceBlockUpgradeMajority)

	// The main network of the modified registry is untouched as well.
	main, err := a.ParamsFor(MainNet)
	require.NoError(t, err)
	require.False(t, main.SkipProofOfWorkCheck)
	require.Equal(t, 750, main.EnforceBlockUpgradeMajority)
}

// TestNewRegistryDefaults ensures a registry can be built without a config.
func TestNewRegistryDefaults(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Select(TestNet))
	require.Equal(t, TestNet, reg.Params().Network)

	reg = NewRegistry(&Config{})
	_, err := reg.ParamsFor(UnitTest)
	require.NoError(t, err)
}
