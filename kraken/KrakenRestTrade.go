package kraken

import (
	"fmt"

	. "krakenapi"
)

var _INERNAL_ORDER_TYPE_CONVERTER = map[OrderType]string{
	MARKET:                 "market",
	LIMIT:                  "limit",
	STOP_LOSS:              "stop-loss",
	TAKE_PROFIT:            "take-profit",
	STOP_LOSS_PROFIT:       "stop-loss-profit",
	STOP_LOSS_PROFIT_LIMIT: "stop-loss-profit-limit",
	STOP_LOSS_LIMIT:        "stop-loss-limit",
	TAKE_PROFIT_LIMIT:      "take-profit-limit",
	TRAILING_STOP:          "trailing-stop",
	TRAILING_STOP_LIMIT:    "trailing-stop-limit",
	STOP_LOSS_AND_LIMIT:    "stop-loss-and-limit",
	SETTLE_POSITION:        "settle-position",
}

var _INERNAL_TRADE_SIDE_CONVERTER = map[TradeSide]string{
	BUY:  "buy",
	SELL: "sell",
}

// PlaceOrder puts a new order onto the book. The volume is formatted with
// trailing zeros stripped; the pair string goes to the exchange verbatim.
// Responsive to OPT_USERREF, OPT_PRICE, OPT_PRICE_2, OPT_TRIGGER,
// OPT_LEVERAGE, OPT_OFLAGS, OPT_TIME_IN_FORCE, OPT_START_TIME,
// OPT_EXPIRE_TIME, OPT_CLOSE_ORDER_TYPE, OPT_CLOSE_PRICE, OPT_CLOSE_PRICE_2,
// OPT_DEADLINE and OPT_VALIDATE.
func (k *Kraken) PlaceOrder(orderType OrderType, side TradeSide, volume float64, pair string) ([]byte, error) {
	orderTypeStd, ok := _INERNAL_ORDER_TYPE_CONVERTER[orderType]
	if !ok {
		return nil, &ArgumentError{Name: "order type", Value: fmt.Sprint(int64(orderType))}
	}
	sideStd, ok := _INERNAL_TRADE_SIDE_CONVERTER[side]
	if !ok {
		return nil, &ArgumentError{Name: "trade side", Value: fmt.Sprint(int64(side))}
	}

	k.SetOpt(OPT_ORDER_TYPE, orderTypeStd)
	k.SetOpt(OPT_TYPE, sideStd)
	k.SetOpt(OPT_VOLUME, FloatToString(volume, 8))
	k.SetOpt(OPT_PAIR, pair)
	return k.DoSignRequest("AddOrder", k.buildQuery([]ApiOption{
		OPT_ORDER_TYPE, OPT_TYPE, OPT_VOLUME,
		OPT_PAIR, OPT_USERREF, OPT_PRICE,
		OPT_PRICE_2, OPT_TRIGGER, OPT_LEVERAGE,
		OPT_OFLAGS, OPT_TIME_IN_FORCE,
		OPT_START_TIME, OPT_EXPIRE_TIME,
		OPT_CLOSE_ORDER_TYPE, OPT_CLOSE_PRICE,
		OPT_CLOSE_PRICE_2, OPT_DEADLINE, OPT_VALIDATE,
	}), nil)
}

// EditOrder amends an order already on the book.
// Responsive to OPT_ORDER_TYPE, OPT_VOLUME, OPT_USERREF, OPT_PRICE,
// OPT_PRICE_2, OPT_OFLAGS, OPT_DEADLINE, OPT_VALIDATE and
// OPT_CANCEL_RESPONSE.
func (k *Kraken) EditOrder(txid, pair string) ([]byte, error) {
	k.SetOpt(OPT_TXID, txid)
	k.SetOpt(OPT_PAIR, pair)
	return k.DoSignRequest("EditOrder", k.buildQuery([]ApiOption{
		OPT_ORDER_TYPE, OPT_VOLUME,
		OPT_PAIR, OPT_USERREF, OPT_PRICE,
		OPT_PRICE_2, OPT_OFLAGS,
		OPT_DEADLINE, OPT_VALIDATE,
		OPT_TXID, OPT_CANCEL_RESPONSE,
	}), nil)
}

// CancelOrder cancels an open order. txid may also carry a userref, in which
// case every open order under that reference is cancelled.
func (k *Kraken) CancelOrder(txid string) ([]byte, error) {
	k.SetOpt(OPT_TXID, txid)
	return k.DoSignRequest("CancelOrder", k.buildQuery([]ApiOption{OPT_TXID}), nil)
}

// CancelAll cancels every order open on the account. The endpoint takes no
// parameters at all, the signed body is just the nonce.
func (k *Kraken) CancelAll() ([]byte, error) {
	return k.DoSignRequest("CancelAll", "", nil)
}

// CancelAllOrdersAfter is the dead man's switch: all orders are cancelled
// after timeout seconds unless the call is repeated. timeout 0 disarms it.
func (k *Kraken) CancelAllOrdersAfter(timeout int64) ([]byte, error) {
	k.SetOpt(OPT_TIMEOUT, timeout)
	return k.DoSignRequest("CancelAllOrdersAfter", k.buildQuery([]ApiOption{OPT_TIMEOUT}), nil)
}
