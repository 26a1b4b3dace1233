// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The BHash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is how much more expensive it is to verify a
// transaction with signature checks than one below the last checkpoint,
// where signatures are skipped.
const sigcheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
//
// Each checkpoint is selected based upon several factors.  See the
// documentation for blockchain.IsCheckpointCandidate for details on the
// selection criteria.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the hard-coded checkpoints of a network together with
// the statistics used to estimate sync progress past the last one.
type CheckpointData struct {
	// Checkpoints must be ordered by strictly increasing height.
	Checkpoints []Checkpoint

	// TimeLastCheckpoint is the timestamp of the last checkpoint block.
	TimeLastCheckpoint time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64
}

// CheckpointTable provides read only access to the checkpoints of a network.
type CheckpointTable struct {
	data     CheckpointData
	byHeight map[int32]*chainhash.Hash
}

// newCheckpointTable returns a table over a copy of data.  The checkpoint
// heights must be strictly increasing.
func newCheckpointTable(data CheckpointData) (*CheckpointTable, error) {
	checkpoints := make([]Checkpoint, len(data.Checkpoints))
	byHeight := make(map[int32]*chainhash.Hash, len(data.Checkpoints))
	for i, checkpoint := range data.Checkpoints {
		if i > 0 && checkpoint.Height <= data.Checkpoints[i-1].Height {
			str := fmt.Sprintf("checkpoint at height %d follows "+
				"checkpoint at height %d", checkpoint.Height,
				data.Checkpoints[i-1].Height)
			return nil, paramsError(ErrCheckpointOrder, str)
		}
		hash := *checkpoint.Hash
		checkpoints[i] = Checkpoint{Height: checkpoint.Height, Hash: &hash}
		byHeight[checkpoint.Height] = &hash
	}
	data.Checkpoints = checkpoints

	return &CheckpointTable{data: data, byHeight: byHeight}, nil
}

// Lookup returns the expected block hash at the passed height and whether
// there is a checkpoint at that height.
func (t *CheckpointTable) Lookup(height int32) (*chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return nil, false
	}
	h := *hash
	return &h, true
}

// CheckBlock returns whether the passed block height and hash combination
// match the checkpoint data.  It also returns true if there is no checkpoint
// at the passed height.
func (t *CheckpointTable) CheckBlock(height int32, hash *chainhash.Hash) bool {
	expected, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return expected.IsEqual(hash)
}

// Checkpoints returns a copy of the checkpoints ordered by height.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	checkpoints := make([]Checkpoint, len(t.data.Checkpoints))
	for i, checkpoint := range t.data.Checkpoints {
		hash := *checkpoint.Hash
		checkpoints[i] = Checkpoint{Height: checkpoint.Height, Hash: &hash}
	}
	return checkpoints
}

// LatestCheckpoint returns the most recent checkpoint.  It returns nil when
// the table is empty.
func (t *CheckpointTable) LatestCheckpoint() *Checkpoint {
	if len(t.data.Checkpoints) == 0 {
		return nil
	}
	latest := t.data.Checkpoints[len(t.data.Checkpoints)-1]
	hash := *latest.Hash
	return &Checkpoint{Height: latest.Height, Hash: &hash}
}

// TotalBlocksEstimate returns the height of the most recent checkpoint, which
// is a lower bound for the height of the best chain.
func (t *CheckpointTable) TotalBlocksEstimate() int32 {
	if len(t.data.Checkpoints) == 0 {
		return 0
	}
	return t.data.Checkpoints[len(t.data.Checkpoints)-1].Height
}

// LastCheckpointTime returns the timestamp of the last checkpoint block.
func (t *CheckpointTable) LastCheckpointTime() time.Time {
	return t.data.TimeLastCheckpoint
}

// TransactionsLastCheckpoint returns the number of transactions up to the
// last checkpoint.
func (t *CheckpointTable) TransactionsLastCheckpoint() int64 {
	return t.data.TransactionsLastCheckpoint
}

// TransactionsPerDay returns the estimated transaction rate after the last
// checkpoint.
func (t *CheckpointTable) TransactionsPerDay() float64 {
	return t.data.TransactionsPerDay
}

// GuessVerificationProgress estimates the fraction of the total verification
// work done once a block with chainTx transactions up to and including it and
// the passed timestamp has been verified.  Transactions below the last
// checkpoint are cheap.  Transactions after it cost sigcheckVerificationFactor
// times as much when sigchecks is set.  Zero total work yields 0.
func (t *CheckpointTable) GuessVerificationProgress(chainTx int64,
	blockTime, now time.Time, sigchecks bool) float64 {

	factor := 1.0
	if sigchecks {
		factor = sigcheckVerificationFactor
	}
	perDay := t.data.TransactionsPerDay
	lastTxs := t.data.TransactionsLastCheckpoint

	var workBefore, workAfter float64
	if chainTx <= lastTxs {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(lastTxs - chainTx)
		expensiveAfter := now.Sub(t.data.TimeLastCheckpoint).Hours() /
			24 * perDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := float64(lastTxs)
		expensiveBefore := float64(chainTx - lastTxs)
		expensiveAfter := now.Sub(blockTime).Hours() / 24 * perDay
		workBefore = cheapBefore + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	if workBefore+workAfter <= 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}
