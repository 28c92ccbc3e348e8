package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists the chain state singleton and header existence markers.
	Store interface {
		State() (model.ChainState, error)
		CreateState(state model.ChainState) error
		PutState(state model.ChainState) error
		CreateMarker(marker model.HeaderMarker) error
		Marker(hash chainhash.Hash) (model.HeaderMarker, error)
	}
)
