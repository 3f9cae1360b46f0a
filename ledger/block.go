package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Block is a single ledger entry. Its fields are fixed at construction and
// its hash is computed from them once.
type Block struct {
	index     int
	prevHash  string
	timestamp float64
	data      string
	proof     uint64
	hash      string
}

// NewBlock builds a block and seals it with its content hash. The proof is
// stored as given; whether it is valid is decided by the chain.
func NewBlock(index int, prevHash string, timestamp float64, data string, proof uint64) Block {
	b := Block{
		index:     index,
		prevHash:  prevHash,
		timestamp: timestamp,
		data:      data,
		proof:     proof,
	}
	b.hash = b.CalculateHash()
	return b
}

// CalculateHash re-derives the content hash from the block fields, in the
// order index, previous hash, timestamp, data, proof, with no separators.
func (b Block) CalculateHash() string {
	return digest(
		strconv.Itoa(b.index),
		b.prevHash,
		formatTimestamp(b.timestamp),
		b.data,
		strconv.FormatUint(b.proof, 10),
	)
}

func (b Block) Index() int { return b.index }
func (b Block) PrevHash() string { return b.prevHash }
func (b Block) Timestamp() float64 { return b.timestamp }
func (b Block) Data() string { return b.data }
func (b Block) Proof() uint64 { return b.proof }
func (b Block) Hash() string { return b.hash }

// Time returns the block timestamp as a time.Time.
func (b Block) Time() time.Time {
	sec, frac := math.Modf(b.timestamp)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9)))
}

type blockJSON struct {
	Index     int     `json:"index"`
	Timestamp float64 `json:"timestamp"`
	PrevHash  string  `json:"prev_hash"`
	Hash      string  `json:"hash"`
	Data      string  `json:"data"`
	Proof     uint64  `json:"proof"`
}

// MarshalJSON exposes the sealed fields for reporting.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockJSON{
		Index:     b.index,
		Timestamp: b.timestamp,
		PrevHash:  b.prevHash,
		Hash:      b.hash,
		Data:      b.data,
		Proof:     b.proof,
	})
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
