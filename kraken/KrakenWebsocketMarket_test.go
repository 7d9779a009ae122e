package kraken

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	. "krakenapi"
)

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestWSMarket_SubscribeRecv
*
**/
func TestWSMarket_SubscribeRecv(t *testing.T) {
	var upgrader = websocket.Upgrader{}
	var server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer conn.Close()

		var q WSQuery
		if err := conn.ReadJSON(&q); err != nil {
			t.Error(err)
			return
		}
		if q.Method != "subscribe" || q.Params.Channel != "ticker" {
			t.Errorf("unexpected subscription: %+v", q)
		}

		// heartbeats must be swallowed, data frames forwarded
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"channel":"heartbeat"}`))
		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"channel":"ticker","data":[{"symbol":"BTC/USD","last":30300.1}]}`))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	var recv = make(chan string, 8)
	var ws = &WSMarket{
		WssUrl:       "ws" + strings.TrimPrefix(server.URL, "http"),
		RecvHandler:  func(msg string) { recv <- msg },
		ErrorHandler: func(err error) {},
	}
	if err := ws.Start(); err != nil {
		t.Fatal(err)
	}
	defer ws.Stop()

	ws.Subscribe(WSQuery{Params: WSParams{Channel: "ticker", Symbol: []string{"BTC/USD"}}})

	select {
	case msg := <-recv:
		if !strings.Contains(msg, `"channel":"ticker"`) {
			t.Errorf("expected the ticker frame, got: %s", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no market frame received")
	}
}

/**
* unit test cmd
* go test -v ./kraken/... -count=1 -run=TestWSMarket_RestartBudget
*
**/
func TestWSMarket_RestartBudget(t *testing.T) {
	var ws = &WSMarket{
		ErrorHandler: func(err error) {},
	}
	ws.initDefaultValue()
	ws.restartLimitNum = 2
	ws.restartLimitSec = 300

	var now = time.Now().Unix()
	for i := int64(0); i < 3; i++ {
		ws.restartTS[now-i] = "conn"
	}

	if err := ws.startCheck(); err == nil {
		t.Fatal("expected the restart budget to refuse a new start")
	} else if _, ok := err.(*WSStopError); !ok {
		t.Errorf("expected *WSStopError, got %T: %v", err, err)
	}
}
