package krakenapi

// exchanges const
const (
	KRAKEN = "kraken"
)

type TradeSide int64

const (
	BUY TradeSide = 1 + iota
	SELL
)

func (ts TradeSide) String() string {
	switch ts {
	case 1:
		return "buy"
	case 2:
		return "sell"
	default:
		return "unknown"
	}
}

type OrderType int64

const (
	MARKET OrderType = 1 + iota
	LIMIT
	STOP_LOSS
	TAKE_PROFIT
	STOP_LOSS_PROFIT
	STOP_LOSS_PROFIT_LIMIT
	STOP_LOSS_LIMIT
	TAKE_PROFIT_LIMIT
	TRAILING_STOP
	TRAILING_STOP_LIMIT
	STOP_LOSS_AND_LIMIT
	SETTLE_POSITION
)

var orderTypeSymbol = [...]string{
	"market", "limit", "stop-loss", "take-profit",
	"stop-loss-profit", "stop-loss-profit-limit", "stop-loss-limit", "take-profit-limit",
	"trailing-stop", "trailing-stop-limit", "stop-loss-and-limit", "settle-position",
}

func (ot OrderType) String() string {
	if ot < MARKET || ot > SETTLE_POSITION {
		return "unknown"
	}
	return orderTypeSymbol[ot-1]
}

// bulk data export subject
type ReportType int64

const (
	REPORT_TRADES ReportType = 1 + iota
	REPORT_LEDGERS
)

func (rt ReportType) String() string {
	switch rt {
	case 1:
		return "trades"
	case 2:
		return "ledgers"
	default:
		return "unknown"
	}
}

// how to dispose of a finished export report
type RemovalType int64

const (
	REMOVAL_DELETE RemovalType = 1 + iota
	REMOVAL_CANCEL
)

func (rt RemovalType) String() string {
	switch rt {
	case 1:
		return "delete"
	case 2:
		return "cancel"
	default:
		return "unknown"
	}
}
