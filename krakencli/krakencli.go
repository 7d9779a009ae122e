package main

import (
	"flag"
)

var cliPair = flag.String("pair", "XXBTZUSD", "Input the pair, kraken naming. ")
var cliProxy = flag.String("proxy", "", "Input the proxy url. ")
var cliTxid = flag.String("txid", "", "Input the transaction id. ")

var sCommand = map[string]string{
	"time":        "exchange server time api",
	"status":      "exchange system status api",
	"ticker":      "exchange ticker api",
	"depth":       "exchange depth api",
	"ohlc":        "exchange candle api",
	"balance":     "account cash balances api (needs credentials)",
	"open-orders": "account open orders api (needs credentials)",
	"cancel":      "cancel the order of -txid (needs credentials)",
}

func main() {
	flag.Parse()
	paramCount := flag.NArg()
	firstParam := ""
	if paramCount != 0 {
		firstParam = flag.Arg(0)
	}

	_, exist := sCommand[firstParam]
	if paramCount == 0 || !exist {
		flag.PrintDefaults()
	} else {
		c := &Command{}
		c.Init(firstParam, flag.Args()[1:])
	}
}
