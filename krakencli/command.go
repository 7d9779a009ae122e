package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	. "krakenapi"
	"krakenapi/kraken"
)

var krakenClient *kraken.Kraken

type Command struct{}

func (c *Command) Init(command string, args []string) {
	// credentials come from the environment, a .env file is honored if present
	_ = godotenv.Load()
	initClient(*cliProxy, os.Getenv("KRAKEN_API_KEY"), os.Getenv("KRAKEN_API_SECRET"))

	var resp []byte
	var err error

	switch command {
	case "time":
		resp, err = krakenClient.GetServerTime()
	case "status":
		resp, err = krakenClient.GetSystemStatus()
	case "ticker":
		resp, err = krakenClient.GetTicker(*cliPair)
	case "depth":
		resp, err = krakenClient.GetDepth(*cliPair)
	case "ohlc":
		resp, err = krakenClient.GetOHLC(*cliPair)
	case "balance":
		resp, err = krakenClient.GetBalance()
	case "open-orders":
		resp, err = krakenClient.GetOpenOrders()
	case "cancel":
		if *cliTxid == "" {
			fmt.Println("the cancel command needs -txid")
			return
		}
		resp, err = krakenClient.CancelOrder(*cliTxid)
	}

	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(resp))
}

func initClient(proxy, apiKey, apiSecretKey string) {
	krakenClient = kraken.New(
		&APIConfig{
			Endpoint:     kraken.ENDPOINT,
			HttpClient:   getHttpClient(proxy),
			ApiKey:       apiKey,
			ApiSecretKey: apiSecretKey,
			Location:     time.Now().Location(),
		},
	)
}

func getHttpClient(proxyUrl string) *http.Client {
	if proxyUrl == "" {
		return &http.Client{
			Timeout: 15 * time.Second,
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				return url.Parse(proxyUrl)
			},
		},
		Timeout: 15 * time.Second,
	}
}
