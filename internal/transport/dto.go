package transport

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chain"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/chainwork"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
)

// Hashes travel in display (reversed) order, headers as hex of their 80-byte wire encoding and
// committed headers as hex of their canonical encoding.

type (
	bootstrapRequest struct {
		Header             string   `json:"header" validate:"required,len=160,hexadecimal"`
		Height             uint32   `json:"height" validate:"gte=10"`
		ChainWork          string   `json:"chain_work" validate:"required,max=66"`
		LastDiffAdjustment uint32   `json:"last_diff_adjustment" validate:"required"`
		PrevTimestamps     []uint32 `json:"prev_timestamps" validate:"len=10"`
	}

	submitHeadersRequest struct {
		Headers []string `json:"headers" validate:"required,min=1,dive,len=160,hexadecimal"`
		Prior   string   `json:"prior" validate:"required,hexadecimal"`
	}

	inclusionRequest struct {
		OutputIndex   uint32   `json:"output_index"`
		LeafPosition  uint32   `json:"leaf_position"`
		Proof         []string `json:"proof" validate:"dive,len=64,hexadecimal"`
		Header        string   `json:"header" validate:"required,hexadecimal"`
		Confirmations uint32   `json:"confirmations"`
	}

	settleRequest struct {
		Raw       string           `json:"raw" validate:"required,hexadecimal"`
		Inclusion inclusionRequest `json:"inclusion"`
		Recipient string           `json:"recipient" validate:"required"`
	}

	initAssemblyRequest struct {
		TxID           string           `json:"txid" validate:"required,len=64,hexadecimal"`
		DeclaredLength uint32           `json:"declared_length" validate:"required"`
		Inclusion      inclusionRequest `json:"inclusion"`
		Recipient      string           `json:"recipient" validate:"required"`
	}

	chunkRequest struct {
		Chunk string `json:"chunk" validate:"required,hexadecimal"`
	}

	depositRequest struct {
		Amount uint64 `json:"amount" validate:"required"`
	}

	withdrawalRequest struct {
		Amount      uint64 `json:"amount" validate:"required"`
		Destination string `json:"destination" validate:"required"`
	}
)

type (
	headerResponse struct {
		Hash               string `json:"hash"`
		PrevHash           string `json:"prev_hash"`
		MerkleRoot         string `json:"merkle_root"`
		Version            int32  `json:"version"`
		Timestamp          uint32 `json:"timestamp"`
		Bits               uint32 `json:"bits"`
		Nonce              uint32 `json:"nonce"`
		Height             uint32 `json:"height"`
		ChainWork          string `json:"chain_work"`
		LastDiffAdjustment uint32 `json:"last_diff_adjustment"`
		CommitHash         string `json:"commit_hash"`
		Committed          string `json:"committed"`
	}

	headerStatusResponse struct {
		Hash       string `json:"hash"`
		CommitHash string `json:"commit_hash"`
		Height     uint32 `json:"height"`
		InRing     bool   `json:"in_ring"`
	}

	settlementResponse struct {
		TxID        string    `json:"txid"`
		Recipient   string    `json:"recipient"`
		OutputIndex uint32    `json:"output_index"`
		Value       int64     `json:"value"`
		Payout      uint64    `json:"payout"`
		BlockHash   string    `json:"block_hash"`
		BlockHeight uint32    `json:"block_height"`
		Staged      bool      `json:"staged"`
		SettledAt   time.Time `json:"settled_at"`
	}

	recordResponse struct {
		TxID           string     `json:"txid"`
		Status         string     `json:"status"`
		Recipient      string     `json:"recipient"`
		DeclaredLength uint32     `json:"declared_length"`
		Received       uint32     `json:"received"`
		OutputIndex    uint32     `json:"output_index"`
		BlockHash      string     `json:"block_hash"`
		BlockHeight    uint32     `json:"block_height"`
		Payout         uint64     `json:"payout"`
		CreatedAt      time.Time  `json:"created_at"`
		SettledAt      *time.Time `json:"settled_at,omitempty"`
	}

	withdrawalResponse struct {
		ID          string    `json:"id"`
		Amount      uint64    `json:"amount"`
		Destination string    `json:"destination"`
		Requester   string    `json:"requester"`
		CreatedAt   time.Time `json:"created_at"`
	}

	reserveResponse struct {
		Reserve uint64 `json:"reserve"`
	}

	balanceResponse struct {
		Recipient string `json:"recipient"`
		Balance   uint64 `json:"balance"`
	}

	initializedResponse struct {
		Initialized bool `json:"initialized"`
	}

	errorResponse struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errBadRequest, field, err)
	}
	return b, nil
}

func decodeHash(field, s string) (chainhash.Hash, error) {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: %s: %v", errBadRequest, field, err)
	}
	return *h, nil
}

func decodeHeader(field, s string) (wire.BlockHeader, error) {
	raw, err := decodeHex(field, s)
	if err != nil {
		return wire.BlockHeader{}, err
	}
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw)); err != nil {
		return wire.BlockHeader{}, fmt.Errorf("%w: %s: %v", errBadRequest, field, err)
	}
	return header, nil
}

func decodeCommitted(field, s string) (model.CommittedHeader, error) {
	raw, err := decodeHex(field, s)
	if err != nil {
		return model.CommittedHeader{}, err
	}
	committed, err := model.ParseCommittedHeader(raw)
	if err != nil {
		return model.CommittedHeader{}, fmt.Errorf("%w: %s: %v", errBadRequest, field, err)
	}
	return committed, nil
}

func (r bootstrapRequest) checkpoint() (chain.Checkpoint, error) {
	header, err := decodeHeader("header", r.Header)
	if err != nil {
		return chain.Checkpoint{}, err
	}
	work, err := chainwork.ParseHex(r.ChainWork)
	if err != nil {
		return chain.Checkpoint{}, fmt.Errorf("%w: chain_work: %v", errBadRequest, err)
	}
	cp := chain.Checkpoint{
		Header:             header,
		Height:             r.Height,
		ChainWork:          work,
		LastDiffAdjustment: r.LastDiffAdjustment,
	}
	copy(cp.PrevTimestamps[:], r.PrevTimestamps)
	return cp, nil
}

func (r submitHeadersRequest) decode() ([]wire.BlockHeader, model.CommittedHeader, error) {
	prior, err := decodeCommitted("prior", r.Prior)
	if err != nil {
		return nil, model.CommittedHeader{}, err
	}
	headers := make([]wire.BlockHeader, 0, len(r.Headers))
	for i, s := range r.Headers {
		header, err := decodeHeader(fmt.Sprintf("headers[%d]", i), s)
		if err != nil {
			return nil, model.CommittedHeader{}, err
		}
		headers = append(headers, header)
	}
	return headers, prior, nil
}

func (r inclusionRequest) inclusion() (settlement.Inclusion, error) {
	header, err := decodeCommitted("inclusion.header", r.Header)
	if err != nil {
		return settlement.Inclusion{}, err
	}
	proof := make([]chainhash.Hash, 0, len(r.Proof))
	for i, s := range r.Proof {
		h, err := decodeHash(fmt.Sprintf("inclusion.proof[%d]", i), s)
		if err != nil {
			return settlement.Inclusion{}, err
		}
		proof = append(proof, h)
	}
	return settlement.Inclusion{
		OutputIndex:   r.OutputIndex,
		LeafPosition:  r.LeafPosition,
		Proof:         proof,
		Header:        header,
		Confirmations: r.Confirmations,
	}, nil
}

func newHeaderResponse(c model.CommittedHeader) headerResponse {
	return headerResponse{
		Hash:               c.Hash().String(),
		PrevHash:           c.Header.PrevBlock.String(),
		MerkleRoot:         c.Header.MerkleRoot.String(),
		Version:            c.Header.Version,
		Timestamp:          c.Timestamp(),
		Bits:               c.Header.Bits,
		Nonce:              c.Header.Nonce,
		Height:             c.Height,
		ChainWork:          hex.EncodeToString(c.ChainWork[:]),
		LastDiffAdjustment: c.LastDiffAdjustment,
		CommitHash:         c.CommitHash().String(),
		Committed:          hex.EncodeToString(c.Bytes()),
	}
}

func newHeaderResponses(cs []model.CommittedHeader) []headerResponse {
	out := make([]headerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, newHeaderResponse(c))
	}
	return out
}

func newHeaderStatusResponse(s chain.HeaderStatus) headerStatusResponse {
	return headerStatusResponse{
		Hash:       s.Marker.Hash.String(),
		CommitHash: s.Marker.CommitHash.String(),
		Height:     s.Marker.Height,
		InRing:     s.InRing,
	}
}

func newSettlementResponse(r model.SettlementResult) settlementResponse {
	return settlementResponse{
		TxID:        r.TxID.String(),
		Recipient:   r.Recipient,
		OutputIndex: r.OutputIndex,
		Value:       r.Value,
		Payout:      r.Payout,
		BlockHash:   r.BlockHash.String(),
		BlockHeight: r.BlockHeight,
		Staged:      r.Staged,
		SettledAt:   r.SettledAt,
	}
}

func newRecordResponse(r model.SettlementRecord) recordResponse {
	resp := recordResponse{
		TxID:           r.TxID.String(),
		Status:         r.Status.String(),
		Recipient:      r.Recipient,
		DeclaredLength: r.DeclaredLength,
		Received:       r.Cursor(),
		OutputIndex:    r.OutputIndex,
		BlockHash:      r.Header.Hash().String(),
		BlockHeight:    r.Header.Height,
		Payout:         r.Payout,
		CreatedAt:      r.CreatedAt,
	}
	if !r.SettledAt.IsZero() {
		settledAt := r.SettledAt
		resp.SettledAt = &settledAt
	}
	return resp
}

func newWithdrawalResponse(w model.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:          w.ID.String(),
		Amount:      w.Amount,
		Destination: w.Destination,
		Requester:   w.Requester,
		CreatedAt:   w.CreatedAt,
	}
}
