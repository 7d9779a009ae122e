package kraken

// Market data endpoints, no authentication. Every method returns the raw JSON
// body as sent by the exchange; interpreting it is the caller's business.

// GetServerTime returns the exchange's idea of now.
func (k *Kraken) GetServerTime() ([]byte, error) {
	return k.DoRequest("Time", "", nil)
}

// GetSystemStatus returns the current exchange system status.
func (k *Kraken) GetSystemStatus() ([]byte, error) {
	return k.DoRequest("SystemStatus", "", nil)
}

// GetAssets lists the assets available for trading.
// Responsive to OPT_ACLASS and OPT_ASSET.
func (k *Kraken) GetAssets() ([]byte, error) {
	return k.DoRequest("Assets", k.buildQuery([]ApiOption{OPT_ACLASS, OPT_ASSET}), nil)
}

// GetAssetPairs lists tradable asset pairs.
// Responsive to OPT_INFO and OPT_PAIR.
func (k *Kraken) GetAssetPairs() ([]byte, error) {
	return k.DoRequest("AssetPairs", k.buildQuery([]ApiOption{OPT_INFO, OPT_PAIR}), nil)
}

// GetTicker returns ticker information for pair, e.g. "XXBTZUSD".
func (k *Kraken) GetTicker(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoRequest("Ticker", k.buildQuery([]ApiOption{OPT_PAIR}), nil)
}

// GetOHLC returns candle data for pair.
// Responsive to OPT_INTERVAL and OPT_SINCE.
func (k *Kraken) GetOHLC(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoRequest("OHLC", k.buildQuery([]ApiOption{OPT_PAIR, OPT_INTERVAL, OPT_SINCE}), nil)
}

// GetDepth returns live order book data for pair.
// OPT_COUNT limits the depth into the book.
func (k *Kraken) GetDepth(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoRequest("Depth", k.buildQuery([]ApiOption{OPT_PAIR, OPT_COUNT}), nil)
}

// GetTrades returns recent trades made at the exchange for pair.
// Responsive to OPT_SINCE.
func (k *Kraken) GetTrades(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoRequest("Trades", k.buildQuery([]ApiOption{OPT_PAIR, OPT_SINCE}), nil)
}

// GetSpread returns recent spread data for pair.
// Responsive to OPT_SINCE.
func (k *Kraken) GetSpread(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoRequest("Spread", k.buildQuery([]ApiOption{OPT_PAIR, OPT_SINCE}), nil)
}
