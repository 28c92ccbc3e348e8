package transport

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

var errBadRequest = errors.New("bad request")

type errorKind struct {
	err    error
	status int
	code   string
}

// Ordered so that specific sentinels match before the ones they wrap.
var errorKinds = []errorKind{
	{errBadRequest, http.StatusBadRequest, "bad_request"},
	{model.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{model.ErrTimestampTooFarInFuture, http.StatusUnprocessableEntity, "timestamp_too_far_in_future"},
	{model.ErrChainContinuity, http.StatusConflict, "chain_continuity"},
	{model.ErrProofOfWork, http.StatusUnprocessableEntity, "proof_of_work"},
	{model.ErrDifficultyAdjustment, http.StatusUnprocessableEntity, "difficulty_adjustment"},
	{model.ErrTimestampOrdering, http.StatusUnprocessableEntity, "timestamp_ordering"},
	{model.ErrEmptyHeaderBatch, http.StatusBadRequest, "empty_header_batch"},
	{model.ErrMerkleProofMismatch, http.StatusUnprocessableEntity, "merkle_proof_mismatch"},
	{model.ErrMalformedTransaction, http.StatusUnprocessableEntity, "malformed_transaction"},
	{model.ErrOutputIndexOutOfRange, http.StatusUnprocessableEntity, "output_index_out_of_range"},
	{model.ErrUnexpectedDepositScript, http.StatusUnprocessableEntity, "unexpected_deposit_script"},
	{model.ErrChunkOverflow, http.StatusUnprocessableEntity, "chunk_overflow"},
	{model.ErrIncompleteAssembly, http.StatusConflict, "incomplete_assembly"},
	{model.ErrInvalidDeclaredLength, http.StatusUnprocessableEntity, "invalid_declared_length"},
	{model.ErrDuplicateRecord, http.StatusConflict, "duplicate_record"},
	{model.ErrAlreadySettled, http.StatusConflict, "already_settled"},
	{model.ErrAlreadyInitialized, http.StatusConflict, "already_initialized"},
	{model.ErrInsufficientReserve, http.StatusConflict, "insufficient_reserve"},
	{model.ErrInsufficientConfirmations, http.StatusConflict, "insufficient_confirmations"},
	{model.ErrBlockHeightCondition, http.StatusPreconditionFailed, "block_height_condition"},
	{model.ErrNotInitialized, http.StatusServiceUnavailable, "not_initialized"},
	{model.ErrUnknownHeader, http.StatusNotFound, "unknown_header"},
	{model.ErrRecordNotFound, http.StatusNotFound, "record_not_found"},
	{model.ErrWithdrawalNotFound, http.StatusNotFound, "withdrawal_not_found"},
	{model.ErrArithmeticOverflow, http.StatusUnprocessableEntity, "arithmetic_overflow"},
	{model.ErrInvalidDestination, http.StatusUnprocessableEntity, "invalid_destination"},
	{model.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid_amount"},
	{model.ErrInvalidRecipient, http.StatusUnprocessableEntity, "invalid_recipient"},
}

// classify maps err to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, "internal"
}
