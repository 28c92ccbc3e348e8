// Package metrics exposes the relay's Prometheus collectors.
package metrics

import "github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"

const namespace = "btcrelay"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
