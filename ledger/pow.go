package ledger

import (
	"context"
	"strconv"
	"strings"
)

// Difficulty is the prefix the hex digest of a valid proof must start with.
const Difficulty = "0000"

// cancellation is polled once every checkInterval candidates.
const checkInterval = 4096

// IsValidProof reports whether proof is an acceptable successor of lastProof.
func IsValidProof(lastProof, proof uint64) bool {
	guess := digest(strconv.FormatUint(lastProof, 10), strconv.FormatUint(proof, 10))
	return strings.HasPrefix(guess, Difficulty)
}

// ProofOfWork returns the smallest proof accepted by IsValidProof for
// lastProof. It blocks until one is found.
func ProofOfWork(lastProof uint64) uint64 {
	var proof uint64
	for !IsValidProof(lastProof, proof) {
		proof++
	}
	return proof
}

// ProofOfWorkContext runs the same search as ProofOfWork but gives up when
// ctx is done, returning ctx.Err().
func ProofOfWorkContext(ctx context.Context, lastProof uint64) (uint64, error) {
	for proof := uint64(0); ; proof++ {
		if proof%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if IsValidProof(lastProof, proof) {
			return proof, nil
		}
	}
}
