package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// GenesisData is the payload of every genesis block.
const GenesisData = "Genesis Block"

var (
	ErrInvalidGenesis = errors.New("invalid genesis block")
	ErrHashMismatch   = errors.New("hash mismatch")
	ErrBrokenLink     = errors.New("broken link")
	ErrInvalidProof   = errors.New("invalid proof")
	ErrIndexGap       = errors.New("index gap")
)

// Blockchain is an append-only sequence of blocks. It is meant to be owned by
// a single writer.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	logger *slog.Logger
	now    func() time.Time
}

// NewBlockchain creates a new blockchain holding only the genesis block.
// The genesis block has index 0, previous hash "0" and proof 0.
func NewBlockchain(opts ...chainOption) *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0, 1),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(bc)
	}

	genesis := NewBlock(0, "0", unixSeconds(bc.now()), GenesisData, 0)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append mines a proof against the latest block and appends a new block
// carrying data. It blocks until the proof is found.
func (bc *Blockchain) Append(data string) {
	// Background is never cancelled, so the error is always nil.
	_, _ = bc.AppendContext(context.Background(), data)
}

// AppendContext is Append with cancellation. If ctx is done before a proof
// is found the chain is left unchanged and ctx.Err() is returned.
func (bc *Blockchain) AppendContext(ctx context.Context, data string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]

	start := time.Now()
	proof, err := ProofOfWorkContext(ctx, latest.Proof())
	if err != nil {
		bc.logger.Warn("proof of work interrupted", "index", latest.Index()+1, "error", err)
		return Block{}, fmt.Errorf("mining block %d: %w", latest.Index()+1, err)
	}

	newBlock := NewBlock(latest.Index()+1, latest.Hash(), unixSeconds(bc.now()), data, proof)
	bc.blocks = append(bc.blocks, newBlock)

	bc.logger.Debug("block appended",
		"index", newBlock.Index(),
		"proof", proof,
		"hash", newBlock.Hash(),
		"elapsed", time.Since(start),
	)
	return newBlock, nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range [0, %d)", index, len(bc.blocks))
	}

	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Blocks returns a copy of the chain in index order.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// IsValid reports whether every block is intact, correctly linked to its
// predecessor and carries a valid proof.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}

// Verify walks the chain from the genesis block and returns the first
// integrity violation found, or nil.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if err := validateGenesis(bc.blocks[0]); err != nil {
		return err
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

func validateGenesis(genesis Block) error {
	if genesis.Index() != 0 || genesis.PrevHash() != "0" || genesis.Proof() != 0 {
		return ErrInvalidGenesis
	}
	if genesis.Hash() != genesis.CalculateHash() {
		return fmt.Errorf("%w: %w", ErrInvalidGenesis, ErrHashMismatch)
	}
	return nil
}

// validateBlock checks current against previous: stored hash, linkage,
// proof and index continuity, in that order.
func validateBlock(current, previous Block) error {
	if expected := current.CalculateHash(); current.Hash() != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, expected, current.Hash())
	}

	if current.PrevHash() != previous.Hash() {
		return fmt.Errorf("%w: expected %s, got %s", ErrBrokenLink, previous.Hash(), current.PrevHash())
	}

	if !IsValidProof(previous.Proof(), current.Proof()) {
		return fmt.Errorf("%w: %d does not follow %d", ErrInvalidProof, current.Proof(), previous.Proof())
	}

	if current.Index() != previous.Index()+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrIndexGap, previous.Index()+1, current.Index())
	}

	return nil
}
