package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

// DepositPolicy restricts which output scripts may be settled. A zero policy accepts any script.
type DepositPolicy struct {
	address string
	script  []byte
}

// NewDepositPolicy derives the expected output script of a deposit address. An empty address
// disables the check.
func NewDepositPolicy(address string, params *chaincfg.Params) (DepositPolicy, error) {
	if address == "" {
		return DepositPolicy{}, nil
	}
	addr, err := decodeAddress(address, params)
	if err != nil {
		return DepositPolicy{}, fmt.Errorf("deposit address: %w", err)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return DepositPolicy{}, fmt.Errorf("deposit address script: %w", err)
	}
	return DepositPolicy{address: addr.EncodeAddress(), script: script}, nil
}

// Enabled reports whether a deposit address is enforced.
func (p DepositPolicy) Enabled() bool {
	return len(p.script) > 0
}

// Check verifies the proven output pays the deposit address.
func (p DepositPolicy) Check(out model.ProvenOutput) error {
	if !p.Enabled() || bytes.Equal(out.Script, p.script) {
		return nil
	}
	return fmt.Errorf("%w: %s output, want %s", model.ErrUnexpectedDepositScript, ScriptClass(out.Script), p.address)
}

// ValidateDestination checks that destination is an address of the network.
func ValidateDestination(destination string, params *chaincfg.Params) error {
	if _, err := decodeAddress(destination, params); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidDestination, err)
	}
	return nil
}

// ScriptClass names the standard form of a script, for logs and history rows.
func ScriptClass(script []byte) string {
	return txscript.GetScriptClass(script).String()
}

func decodeAddress(address string, params *chaincfg.Params) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, err
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("address %s is not for network %s", address, params.Name)
	}
	return addr, nil
}
