package model

import (
	"errors"
	"fmt"
)

var (
	ErrChainContinuity      = errors.New("chain continuity violated")
	ErrProofOfWork          = errors.New("proof of work invalid")
	ErrDifficultyAdjustment = errors.New("difficulty adjustment invalid")
	ErrTimestampOrdering    = errors.New("timestamp ordering invalid")
	ErrMerkleProofMismatch  = errors.New("merkle proof mismatch")
	ErrChunkOverflow        = errors.New("chunk overflows declared length")
	ErrIncompleteAssembly   = errors.New("assembly incomplete")
	ErrDuplicateRecord      = errors.New("record already exists")
	ErrAlreadySettled       = errors.New("transaction already settled")
	ErrInsufficientReserve  = errors.New("insufficient reserve")
	ErrNotInitialized       = errors.New("chain state not initialized")

	ErrUnauthorized              = errors.New("caller not authorized")
	ErrInsufficientConfirmations = errors.New("insufficient confirmations")
	ErrUnknownHeader             = errors.New("header not committed")
	ErrRecordNotFound            = errors.New("settlement record not found")
	ErrInvalidDeclaredLength     = errors.New("declared length out of range")
	ErrUnexpectedDepositScript   = errors.New("output does not pay the deposit address")
	ErrMalformedTransaction      = errors.New("malformed transaction")
	ErrOutputIndexOutOfRange     = errors.New("output index out of range")
	ErrAlreadyInitialized        = errors.New("chain state already initialized")
	ErrArithmeticOverflow        = errors.New("arithmetic overflow")
	ErrBlockHeightCondition      = errors.New("block height condition not met")
	ErrInvalidDestination        = errors.New("invalid withdrawal destination")
	ErrEmptyHeaderBatch          = errors.New("empty header batch")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidRecipient          = errors.New("invalid recipient")
	ErrWithdrawalNotFound        = errors.New("withdrawal not found")

	ErrTimestampTooFarInFuture = fmt.Errorf("%w: too far in the future", ErrTimestampOrdering)
)
