// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// seedAge is the minimum age of a fixed seed's last seen time.  Timestamps
// are drawn from [now - 2*seedAge, now - seedAge].
const seedAge = 7 * 24 * time.Hour

// RandSource is the source of randomness used to stamp fixed seeds.  It is
// satisfied by *math/rand.Rand.
type RandSource interface {
	// Int63n returns a non-negative pseudo-random number in [0, n).
	Int63n(n int64) int64
}

// SeedSpec6 is a compiled-in fixed seed: an IPv6 (or IPv4-mapped) address
// and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// AssembleSeeds converts fixed seed specs into peer addresses.  Each address
// gets a random last seen time between one and two weeks before now so new
// nodes do not all rank the seeds identically.  Only a few seeds are ever
// tried since the first connection returns plenty of fresher addresses.
func AssembleSeeds(specs []SeedSpec6, now time.Time, rng RandSource) []*wire.NetAddress {
	week := int64(seedAge / time.Second)
	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		offset := time.Duration(week+rng.Int63n(week)) * time.Second
		lastSeen := time.Unix(now.Add(-offset).Unix(), 0)
		addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
			wire.SFNodeNetwork, ip, spec.Port))
	}
	return addrs
}
