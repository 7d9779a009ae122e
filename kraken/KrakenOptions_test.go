package kraken

import (
	"testing"
)

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestKraken_BuildQuery
*
**/
func TestKraken_BuildQuery(t *testing.T) {
	var kraken = New(testConfig())

	// only whitelisted options that are actually set may appear
	kraken.SetOpt(OPT_SINCE, 2)
	kraken.SetOpt(OPT_TXID, "x")
	var query = kraken.buildQuery([]ApiOption{OPT_PAIR, OPT_SINCE, OPT_COUNT})
	if query != "since=2" {
		t.Errorf("expected %q, got %q", "since=2", query)
	}

	// empty whitelist-registry intersection is a valid empty query
	if query := kraken.buildQuery([]ApiOption{OPT_LEVERAGE}); query != "" {
		t.Errorf("expected empty query, got %q", query)
	}
	if query := kraken.buildQuery(nil); query != "" {
		t.Errorf("expected empty query, got %q", query)
	}
}

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestKraken_BuildQueryOrder
*
**/
func TestKraken_BuildQueryOrder(t *testing.T) {
	var kraken = New(testConfig())

	// insertion order into the registry must not matter, only whitelist order
	kraken.SetOpt(OPT_PAIR, "XXBTZUSD")
	var whitelist = []ApiOption{OPT_PAIR, OPT_SINCE}
	if query := kraken.buildQuery(whitelist); query != "pair=XXBTZUSD" {
		t.Errorf("expected %q, got %q", "pair=XXBTZUSD", query)
	}

	kraken.SetOpt(OPT_SINCE, 1000)
	if query := kraken.buildQuery(whitelist); query != "pair=XXBTZUSD&since=1000" {
		t.Errorf("expected %q, got %q", "pair=XXBTZUSD&since=1000", query)
	}

	kraken.ClearAllOptions()
	kraken.SetOpt(OPT_SINCE, 1000)
	kraken.SetOpt(OPT_PAIR, "XXBTZUSD")
	if query := kraken.buildQuery(whitelist); query != "pair=XXBTZUSD&since=1000" {
		t.Errorf("expected %q, got %q", "pair=XXBTZUSD&since=1000", query)
	}
}

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestKraken_OptionReset
*
**/
func TestKraken_OptionReset(t *testing.T) {
	var kraken = New(testConfig())
	var whitelist = []ApiOption{OPT_ASSET, OPT_PAIR, OPT_SINCE, OPT_COUNT}

	kraken.SetOpt(OPT_ASSET, "usd")
	kraken.SetOpt(OPT_PAIR, "XXBTZUSD")
	kraken.SetOpt(OPT_COUNT, 5)

	kraken.ClearAllOptions()
	kraken.SetOpt(OPT_PAIR, "XETHZUSD")

	// only the re-set subset survives the reset
	if query := kraken.buildQuery(whitelist); query != "pair=XETHZUSD" {
		t.Errorf("expected %q, got %q", "pair=XETHZUSD", query)
	}
}

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestKraken_OptionOverwriteClear
*
**/
func TestKraken_OptionOverwriteClear(t *testing.T) {
	var kraken = New(testConfig())

	kraken.SetOpt(OPT_ASSET, "usd")
	kraken.SetOpt(OPT_ASSET, "eur")
	if query := kraken.buildQuery([]ApiOption{OPT_ASSET}); query != "asset=eur" {
		t.Errorf("expected %q, got %q", "asset=eur", query)
	}

	kraken.ClearOpt(OPT_ASSET)
	if query := kraken.buildQuery([]ApiOption{OPT_ASSET}); query != "" {
		t.Errorf("expected empty query after clear, got %q", query)
	}

	// clearing an unset option is a no-op
	kraken.ClearOpt(OPT_LEVERAGE)
}

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestKraken_OptionWireNames
*
**/
func TestKraken_OptionWireNames(t *testing.T) {
	var kraken = New(testConfig())

	// the bracketed forms must reach the wire exactly as documented
	kraken.SetOpt(OPT_CLOSE_ORDER_TYPE, "limit")
	kraken.SetOpt(OPT_CLOSE_PRICE, 38000)
	kraken.SetOpt(OPT_CLOSE_PRICE_2, 39000)
	kraken.SetOpt(OPT_FEE_INFO, true)
	kraken.SetOpt(OPT_START_TIME, 1688888888)

	var query = kraken.buildQuery([]ApiOption{
		OPT_CLOSE_ORDER_TYPE, OPT_CLOSE_PRICE, OPT_CLOSE_PRICE_2, OPT_FEE_INFO, OPT_START_TIME,
	})
	var expected = "close[ordertype]=limit&close[price]=38000&close[price2]=39000&fee-info=true&starttm=1688888888"
	if query != expected {
		t.Errorf("expected %q, got %q", expected, query)
	}

	// every declared option has a wire name
	for opt := OPT_INFO; opt <= OPT_DESCRIPTION; opt++ {
		if _, ok := _INERNAL_OPTION_NAME_CONVERTER[opt]; !ok {
			t.Errorf("option %d has no wire name", opt)
		}
	}
}
