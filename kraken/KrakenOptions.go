package kraken

import (
	"fmt"
	"strings"
)

// ApiOption enumerates every optional argument any kraken endpoint accepts.
// The set is closed: each option maps 1:1 onto the exchange-defined parameter
// name below, and nothing outside it is ever transmitted.
type ApiOption int64

const (
	// Information to be retrieved, one of "info", "leverage", "fees", or "margin".
	OPT_INFO ApiOption = 1 + iota
	// Asset class; the only known valid value seems to be "currency".
	OPT_ACLASS
	// An asset (e.g. "usd"), or a comma-delimited list, or "all".
	OPT_ASSET
	// Whether to include trades (boolean as str).
	OPT_TRADES
	// Restrict results to a given user reference ID (i32 as str).
	OPT_USERREF
	// UNIX timestamp or transaction ID demarking the start of returned results.
	OPT_START
	// UNIX timestamp or transaction ID demarking the end of returned results.
	OPT_END
	// Offset into the full result list, for pagination.
	OPT_OFS
	// One of "open", "close", or "both": which time stamp to filter on.
	OPT_CLOSE_TIME
	// Boolean: do profit and loss calculations.
	OPT_DO_CALCS
	// A trading pair such as "XETCXETH", or a comma-separated list.
	OPT_PAIR
	// Boolean: include fee info in the results.
	OPT_FEE_INFO
	// Comma-delimited order flags: "post", "fcib", "fciq", "nompp".
	OPT_OFLAGS
	// UNIX timestamp of the start of a report.
	OPT_START_TIME
	// UNIX timestamp of the end of a report.
	OPT_END_TIME
	// One of "CSV" or "TSV".
	OPT_FORMAT
	// Comma-delimited list of fields to include in a report.
	OPT_FIELDS
	// Expiration time, "+<N>" seconds from now or a UNIX timestamp.
	OPT_EXPIRE_TIME
	// Boolean: validate the order without submitting it.
	OPT_VALIDATE
	// RFC3339 stamp after which a new order request is rejected.
	OPT_DEADLINE
	// One of the order type wire strings, see OrderType.
	OPT_ORDER_TYPE
	// Varies by endpoint: trade direction, trade type filter, or removal type.
	OPT_TYPE
	// Conditional close order type.
	OPT_CLOSE_ORDER_TYPE
	// Conditional close order price.
	OPT_CLOSE_PRICE
	// Conditional close order secondary price.
	OPT_CLOSE_PRICE_2
	// Limit price for limit orders, trigger price for the rest.
	OPT_PRICE
	// Limit price for stop-loss-limit and take-profit-limit orders.
	OPT_PRICE_2
	// One of "index" or "last": which price signal triggers an order.
	OPT_TRIGGER
	// Amount of leverage desired.
	OPT_LEVERAGE
	// One of "GTC", "IOC", or "GTD".
	OPT_TIME_IN_FORCE
	// Order quantity in terms of the base asset.
	OPT_VOLUME
	// Time frame interval in minutes.
	OPT_INTERVAL
	// Time interval in seconds.
	OPT_TIMEOUT
	// Return data points since the given UNIX timestamp.
	OPT_SINCE
	// The maximum number of data to return.
	OPT_COUNT
	// One or more transaction IDs, sometimes user reference IDs.
	OPT_TXID
	// Market or symbol pair over which to consolidate open margin positions.
	OPT_CONSOLIDATION
	// Comma-delimited list of ledger IDs, or a report ID.
	OPT_ID
	// Use pending replace before complete replace (bool as str).
	OPT_CANCEL_RESPONSE
	// Export report subject, "trades" or "ledgers".
	OPT_REPORT
	// Export report description.
	OPT_DESCRIPTION
)

// the exact parameter names kraken documents, bracketed forms included
var _INERNAL_OPTION_NAME_CONVERTER = map[ApiOption]string{
	OPT_INFO:             "info",
	OPT_ACLASS:           "aclass",
	OPT_ASSET:            "asset",
	OPT_TRADES:           "trades",
	OPT_USERREF:          "userref",
	OPT_START:            "start",
	OPT_END:              "end",
	OPT_OFS:              "ofs",
	OPT_CLOSE_TIME:       "closetime",
	OPT_DO_CALCS:         "docalcs",
	OPT_PAIR:             "pair",
	OPT_FEE_INFO:         "fee-info",
	OPT_OFLAGS:           "oflags",
	OPT_START_TIME:       "starttm",
	OPT_END_TIME:         "endtm",
	OPT_FORMAT:           "format",
	OPT_FIELDS:           "fields",
	OPT_EXPIRE_TIME:      "expiretm",
	OPT_VALIDATE:         "validate",
	OPT_DEADLINE:         "deadline",
	OPT_ORDER_TYPE:       "ordertype",
	OPT_TYPE:             "type",
	OPT_CLOSE_ORDER_TYPE: "close[ordertype]",
	OPT_CLOSE_PRICE:      "close[price]",
	OPT_CLOSE_PRICE_2:    "close[price2]",
	OPT_PRICE:            "price",
	OPT_PRICE_2:          "price2",
	OPT_TRIGGER:          "trigger",
	OPT_LEVERAGE:         "leverage",
	OPT_TIME_IN_FORCE:    "timeinforce",
	OPT_VOLUME:           "volume",
	OPT_INTERVAL:         "interval",
	OPT_TIMEOUT:          "timeout",
	OPT_SINCE:            "since",
	OPT_COUNT:            "count",
	OPT_TXID:             "txid",
	OPT_CONSOLIDATION:    "consolidation",
	OPT_ID:               "id",
	OPT_CANCEL_RESPONSE:  "cancel_response",
	OPT_REPORT:           "report",
	OPT_DESCRIPTION:      "description",
}

// SetOpt stores the string form of value under opt, overwriting any prior
// value. Options persist across calls on the same handle until cleared, so
// clear stale ones between calls with different intents. Values are passed to
// the exchange as given, nothing is validated here.
func (k *Kraken) SetOpt(opt ApiOption, value interface{}) {
	k.options[opt] = fmt.Sprint(value)
}

// ClearOpt removes opt from the handle if present.
func (k *Kraken) ClearOpt(opt ApiOption) {
	delete(k.options, opt)
}

// ClearAllOptions puts the option set back into a well-known empty state.
func (k *Kraken) ClearAllOptions() {
	k.options = map[ApiOption]string{}
}

// buildQuery serializes the permitted options currently set on the handle as
// name=value pairs joined by "&", in whitelist order. Set options outside the
// whitelist are omitted; an empty intersection yields "".
func (k *Kraken) buildQuery(permitted []ApiOption) string {
	var params = make([]string, 0, len(permitted))
	for _, opt := range permitted {
		if value, ok := k.options[opt]; ok {
			params = append(params, _INERNAL_OPTION_NAME_CONVERTER[opt]+"="+value)
		}
	}
	return strings.Join(params, "&")
}
