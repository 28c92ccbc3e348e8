package transport

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

const (
	// CallerHeader names the caller of a request.
	CallerHeader = "X-Caller-ID"

	operatorID = "operator"
)

// Authenticator derives the caller of a request. A bearer token equal to the operator token
// grants operator rights; any other token is rejected.
type Authenticator struct {
	token []byte
}

func NewAuthenticator(operatorToken string) Authenticator {
	return Authenticator{token: []byte(operatorToken)}
}

func (a Authenticator) Caller(r *http.Request) (model.Caller, error) {
	caller := model.Caller{ID: strings.TrimSpace(r.Header.Get(CallerHeader))}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		return caller, nil
	}
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return model.Caller{}, fmt.Errorf("%w: unsupported authorization scheme", model.ErrUnauthorized)
	}
	if len(a.token) == 0 || subtle.ConstantTimeCompare([]byte(token), a.token) != 1 {
		return model.Caller{}, fmt.Errorf("%w: invalid operator token", model.ErrUnauthorized)
	}

	caller.Operator = true
	if caller.ID == "" {
		caller.ID = operatorID
	}
	return caller, nil
}
