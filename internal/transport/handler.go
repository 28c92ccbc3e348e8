// Package transport serves the relay engine over REST and gRPC health.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/settlement"
	"github.com/google/uuid"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// maxBodyBytes fits a hex-encoded transaction of the default maximum size plus its proof.
const maxBodyBytes = 2*settlement.DefaultMaxTxSize + 1<<20

// Handler maps REST endpoints onto a Relay.
type Handler struct {
	relay    Relay
	auth     Authenticator
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(relay Relay, auth Authenticator, logger *zap.Logger) *Handler {
	return &Handler{
		relay:    relay,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("rest"),
	}
}

type endpoint func(r *http.Request, params map[string]string) (any, error)

// Register binds every endpoint to mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		status  int
		fn      endpoint
	}{
		{http.MethodGet, "/v1/status", http.StatusOK, h.status},
		{http.MethodGet, "/v1/tip", http.StatusOK, h.tip},
		{http.MethodGet, "/v1/headers/{hash}", http.StatusOK, h.headerStatus},
		{http.MethodGet, "/v1/height-check", http.StatusOK, h.heightCheck},
		{http.MethodPost, "/v1/bootstrap", http.StatusCreated, h.bootstrap},
		{http.MethodPost, "/v1/headers", http.StatusCreated, h.submitHeaders},
		{http.MethodPost, "/v1/settlements", http.StatusCreated, h.settle},
		{http.MethodPost, "/v1/assemblies", http.StatusCreated, h.initAssembly},
		{http.MethodPost, "/v1/assemblies/{txid}/chunks", http.StatusOK, h.appendBytes},
		{http.MethodPost, "/v1/assemblies/{txid}/finalize", http.StatusCreated, h.finalize},
		{http.MethodGet, "/v1/records/{txid}", http.StatusOK, h.record},
		{http.MethodPost, "/v1/reserve/deposits", http.StatusOK, h.deposit},
		{http.MethodGet, "/v1/reserve", http.StatusOK, h.reserve},
		{http.MethodGet, "/v1/balances/{recipient}", http.StatusOK, h.balance},
		{http.MethodPost, "/v1/withdrawals", http.StatusCreated, h.withdraw},
		{http.MethodGet, "/v1/withdrawals/{id}", http.StatusOK, h.withdrawal},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, h.serve(route.status, route.fn)); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func (h *Handler) serve(status int, fn endpoint) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		resp, err := fn(r, params)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, status, resp)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		h.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("code", code), zap.Error(err))
	}
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", errBadRequest, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s fails %q", errBadRequest, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handler) status(r *http.Request, _ map[string]string) (any, error) {
	ok, err := h.relay.Initialized(r.Context())
	if err != nil {
		return nil, err
	}
	return initializedResponse{Initialized: ok}, nil
}

func (h *Handler) tip(r *http.Request, _ map[string]string) (any, error) {
	tip, err := h.relay.Tip(r.Context())
	if err != nil {
		return nil, err
	}
	return newHeaderResponse(tip), nil
}

func (h *Handler) headerStatus(r *http.Request, params map[string]string) (any, error) {
	hash, err := decodeHash("hash", params["hash"])
	if err != nil {
		return nil, err
	}
	status, err := h.relay.HeaderStatus(r.Context(), hash)
	if err != nil {
		return nil, err
	}
	return newHeaderStatusResponse(status), nil
}

func (h *Handler) heightCheck(r *http.Request, _ map[string]string) (any, error) {
	query := r.URL.Query()
	value, err := strconv.ParseUint(query.Get("value"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: value: %v", errBadRequest, err)
	}
	op, err := strconv.ParseUint(query.Get("op"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: op: %v", errBadRequest, err)
	}
	if err := h.relay.CheckBlockHeight(r.Context(), uint32(value), uint32(op)); err != nil {
		return nil, err
	}
	return struct {
		OK bool `json:"ok"`
	}{OK: true}, nil
}

func (h *Handler) bootstrap(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req bootstrapRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	cp, err := req.checkpoint()
	if err != nil {
		return nil, err
	}
	tip, err := h.relay.Bootstrap(r.Context(), caller, cp)
	if err != nil {
		return nil, err
	}
	return newHeaderResponse(tip), nil
}

func (h *Handler) submitHeaders(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req submitHeadersRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	headers, prior, err := req.decode()
	if err != nil {
		return nil, err
	}
	accepted, err := h.relay.SubmitHeaders(r.Context(), caller, headers, prior)
	if err != nil {
		return nil, err
	}
	return newHeaderResponses(accepted), nil
}

func (h *Handler) settle(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req settleRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	raw, err := decodeHex("raw", req.Raw)
	if err != nil {
		return nil, err
	}
	inc, err := req.Inclusion.inclusion()
	if err != nil {
		return nil, err
	}
	res, err := h.relay.SettleTransaction(r.Context(), caller, raw, inc, req.Recipient)
	if err != nil {
		return nil, err
	}
	return newSettlementResponse(res), nil
}

func (h *Handler) initAssembly(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req initAssemblyRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	txid, err := decodeHash("txid", req.TxID)
	if err != nil {
		return nil, err
	}
	inc, err := req.Inclusion.inclusion()
	if err != nil {
		return nil, err
	}
	rec, err := h.relay.InitAssembly(r.Context(), caller, txid, req.DeclaredLength, inc, req.Recipient)
	if err != nil {
		return nil, err
	}
	return newRecordResponse(rec), nil
}

func (h *Handler) appendBytes(r *http.Request, params map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	txid, err := decodeHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	var req chunkRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	chunk, err := decodeHex("chunk", req.Chunk)
	if err != nil {
		return nil, err
	}
	rec, err := h.relay.AppendBytes(r.Context(), caller, txid, chunk)
	if err != nil {
		return nil, err
	}
	return newRecordResponse(rec), nil
}

func (h *Handler) finalize(r *http.Request, params map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	txid, err := decodeHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	res, err := h.relay.Finalize(r.Context(), caller, txid)
	if err != nil {
		return nil, err
	}
	return newSettlementResponse(res), nil
}

func (h *Handler) record(r *http.Request, params map[string]string) (any, error) {
	txid, err := decodeHash("txid", params["txid"])
	if err != nil {
		return nil, err
	}
	rec, err := h.relay.Record(r.Context(), txid)
	if err != nil {
		return nil, err
	}
	return newRecordResponse(rec), nil
}

func (h *Handler) deposit(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req depositRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	reserve, err := h.relay.DepositReserve(r.Context(), caller, req.Amount)
	if err != nil {
		return nil, err
	}
	return reserveResponse{Reserve: reserve}, nil
}

func (h *Handler) reserve(r *http.Request, _ map[string]string) (any, error) {
	reserve, err := h.relay.Reserve(r.Context())
	if err != nil {
		return nil, err
	}
	return reserveResponse{Reserve: reserve}, nil
}

func (h *Handler) balance(r *http.Request, params map[string]string) (any, error) {
	recipient := params["recipient"]
	balance, err := h.relay.Balance(r.Context(), recipient)
	if err != nil {
		return nil, err
	}
	return balanceResponse{Recipient: recipient, Balance: balance}, nil
}

func (h *Handler) withdraw(r *http.Request, _ map[string]string) (any, error) {
	caller, err := h.auth.Caller(r)
	if err != nil {
		return nil, err
	}
	var req withdrawalRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	w, err := h.relay.InitiateWithdrawal(r.Context(), caller, req.Amount, req.Destination)
	if err != nil {
		return nil, err
	}
	return newWithdrawalResponse(w), nil
}

func (h *Handler) withdrawal(r *http.Request, params map[string]string) (any, error) {
	id, err := uuid.Parse(params["id"])
	if err != nil {
		return nil, fmt.Errorf("%w: id: %v", errBadRequest, err)
	}
	w, err := h.relay.Withdrawal(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return newWithdrawalResponse(w), nil
}
