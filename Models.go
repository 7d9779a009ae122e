package krakenapi

import (
	"net/http"
	"time"
)

type APIConfig struct {
	HttpClient    *http.Client
	Endpoint      string
	ApiKey        string
	ApiSecretKey  string // base64 encoded, 88 characters as issued by the exchange
	Location      *time.Location
	LastTimestamp int64
}

// ExchangeResponse is the outer envelope of every kraken REST reply: either a
// non-empty Error array, or an endpoint-specific Result. The binding hands the
// raw body through and leaves interpretation to the caller; this struct is for
// callers that only care about the envelope.
type ExchangeResponse struct {
	Error  []string    `json:"error"`
	Result interface{} `json:"result"`
}
