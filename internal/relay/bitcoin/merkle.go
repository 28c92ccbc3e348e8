package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// MaxProofDepth bounds the Merkle path length.
const MaxProofDepth = 32

// FoldProof walks leaf up the proof path. Bit i of position selects the order at step i:
// 0 hashes (current || sibling), 1 hashes (sibling || current).
func FoldProof(leaf chainhash.Hash, position uint32, proof []chainhash.Hash) (chainhash.Hash, error) {
	if len(proof) > MaxProofDepth {
		return chainhash.Hash{}, fmt.Errorf("%w: proof depth %d", model.ErrMerkleProofMismatch, len(proof))
	}
	if len(proof) < MaxProofDepth && position>>uint(len(proof)) != 0 {
		return chainhash.Hash{}, fmt.Errorf("%w: leaf position %d beyond proof depth %d",
			model.ErrMerkleProofMismatch, position, len(proof))
	}

	var pair [chainhash.HashSize * 2]byte
	current := leaf
	for i, sibling := range proof {
		if position>>uint(i)&1 == 0 {
			copy(pair[:chainhash.HashSize], current[:])
			copy(pair[chainhash.HashSize:], sibling[:])
		} else {
			copy(pair[:chainhash.HashSize], sibling[:])
			copy(pair[chainhash.HashSize:], current[:])
		}
		current = chainhash.DoubleHashH(pair[:])
	}
	return current, nil
}

// VerifyTxID checks that txid folds to the Merkle root of header.
func VerifyTxID(txid chainhash.Hash, position uint32, proof []chainhash.Hash, header model.CommittedHeader) error {
	root, err := FoldProof(txid, position, proof)
	if err != nil {
		return err
	}
	if !root.IsEqual(&header.Header.MerkleRoot) {
		return fmt.Errorf("%w: computed root %s, header root %s", model.ErrMerkleProofMismatch, root, header.Header.MerkleRoot)
	}
	return nil
}

// VerifyInclusion proves raw is included in header and returns its output at outputIndex.
func VerifyInclusion(
	raw []byte,
	outputIndex uint32,
	position uint32,
	proof []chainhash.Hash,
	header model.CommittedHeader,
) (model.ProvenOutput, error) {
	leaf, err := LeafHash(raw)
	if err != nil {
		return model.ProvenOutput{}, fmt.Errorf("%w: %v", model.ErrMerkleProofMismatch, err)
	}
	if err := VerifyTxID(leaf, position, proof, header); err != nil {
		return model.ProvenOutput{}, err
	}

	tx, err := DecodeTransaction(raw)
	if err != nil {
		return model.ProvenOutput{}, err
	}
	return OutputAt(tx, outputIndex)
}

// BuildProof returns the sibling path of leaf index in a tree over leaves, using Bitcoin's
// duplicate-last rule for odd levels.
func BuildProof(leaves []chainhash.Hash, index uint32) ([]chainhash.Hash, error) {
	if int(index) >= len(leaves) {
		return nil, fmt.Errorf("leaf index %d out of range %d", index, len(leaves))
	}

	level := append([]chainhash.Hash(nil), leaves...)
	var proof []chainhash.Hash
	pos := int(index)
	var pair [chainhash.HashSize * 2]byte
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		proof = append(proof, level[pos^1])

		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			copy(pair[:chainhash.HashSize], level[i][:])
			copy(pair[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.DoubleHashH(pair[:]))
		}
		level = next
		pos /= 2
	}
	return proof, nil
}
