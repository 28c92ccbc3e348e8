package bitcoin

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// CheckProofOfWork verifies that the header hash does not exceed the target its bits claim,
// and that the claimed target lies within (0, powLimit].
func CheckProofOfWork(header *wire.BlockHeader, powLimit *big.Int) error {
	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("%w: target from bits %08x is not positive", model.ErrProofOfWork, header.Bits)
	}
	if powLimit != nil && target.Cmp(powLimit) > 0 {
		return fmt.Errorf("%w: target from bits %08x above pow limit", model.ErrProofOfWork, header.Bits)
	}

	hash := header.BlockHash()
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fmt.Errorf("%w: hash %s above target %064x", model.ErrProofOfWork, hash, target)
	}
	return nil
}
