package kraken

// User data endpoints. All of them sign with the account credential and POST
// to /0/private/. Raw JSON comes back untouched.

// GetBalance retrieves all cash balances.
func (k *Kraken) GetBalance() ([]byte, error) {
	return k.DoSignRequest("Balance", "", nil)
}

// GetTradeBalance summarizes standing with an asset.
// Responsive to OPT_ASSET.
func (k *Kraken) GetTradeBalance() ([]byte, error) {
	return k.DoSignRequest("TradeBalance", k.buildQuery([]ApiOption{OPT_ASSET}), nil)
}

// GetOpenOrders lists currently open orders.
// Responsive to OPT_TRADES and OPT_USERREF.
func (k *Kraken) GetOpenOrders() ([]byte, error) {
	return k.DoSignRequest("OpenOrders", k.buildQuery([]ApiOption{OPT_TRADES, OPT_USERREF}), nil)
}

// GetClosedOrders lists closed orders, paged up to 50 at a time.
// Responsive to OPT_TRADES, OPT_USERREF, OPT_START, OPT_END, OPT_OFS and
// OPT_CLOSE_TIME.
func (k *Kraken) GetClosedOrders() ([]byte, error) {
	return k.DoSignRequest("ClosedOrders", k.buildQuery([]ApiOption{
		OPT_TRADES, OPT_USERREF, OPT_START, OPT_END, OPT_OFS, OPT_CLOSE_TIME,
	}), nil)
}

// QueryOrders returns order details; txid may be a comma-separated list.
// Responsive to OPT_TRADES and OPT_USERREF.
func (k *Kraken) QueryOrders(txid string) ([]byte, error) {
	k.SetOpt(OPT_TXID, txid)
	return k.DoSignRequest("QueryOrders", k.buildQuery([]ApiOption{OPT_TXID, OPT_TRADES, OPT_USERREF}), nil)
}

// GetTradesHistory lists past trades, paged up to 50 at a time.
// Responsive to OPT_TYPE, OPT_TRADES, OPT_START, OPT_END and OPT_OFS.
func (k *Kraken) GetTradesHistory() ([]byte, error) {
	return k.DoSignRequest("TradesHistory", k.buildQuery([]ApiOption{
		OPT_TYPE, OPT_TRADES, OPT_START, OPT_END, OPT_OFS,
	}), nil)
}

// QueryTrades returns information about specific trades; txid may be a
// comma-separated list. Responsive to OPT_TRADES.
func (k *Kraken) QueryTrades(txid string) ([]byte, error) {
	k.SetOpt(OPT_TXID, txid)
	return k.DoSignRequest("QueryTrades", k.buildQuery([]ApiOption{OPT_TXID, OPT_TRADES}), nil)
}

// GetOpenPositions reports open margin positions.
// Responsive to OPT_TXID, OPT_DO_CALCS and OPT_CONSOLIDATION.
func (k *Kraken) GetOpenPositions() ([]byte, error) {
	return k.DoSignRequest("OpenPositions", k.buildQuery([]ApiOption{
		OPT_TXID, OPT_DO_CALCS, OPT_CONSOLIDATION,
	}), nil)
}

// GetLedgers retrieves ledger entries.
// Responsive to OPT_ACLASS, OPT_ASSET, OPT_TYPE, OPT_START, OPT_END and OPT_OFS.
func (k *Kraken) GetLedgers() ([]byte, error) {
	return k.DoSignRequest("Ledgers", k.buildQuery([]ApiOption{
		OPT_ACLASS, OPT_ASSET, OPT_TYPE, OPT_START, OPT_END, OPT_OFS,
	}), nil)
}

// QueryLedgers retrieves specific ledger entries.
// Responsive to OPT_ID and OPT_TRADES.
func (k *Kraken) QueryLedgers() ([]byte, error) {
	return k.DoSignRequest("QueryLedgers", k.buildQuery([]ApiOption{OPT_ID, OPT_TRADES}), nil)
}

// GetTradeVolume reports trade volume for pair.
// Responsive to OPT_FEE_INFO.
func (k *Kraken) GetTradeVolume(pair string) ([]byte, error) {
	k.SetOpt(OPT_PAIR, pair)
	return k.DoSignRequest("TradeVolume", k.buildQuery([]ApiOption{OPT_PAIR, OPT_FEE_INFO}), nil)
}
