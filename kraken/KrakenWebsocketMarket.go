package kraken

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	. "krakenapi"
)

const (
	WSS_ENDPOINT = "wss://ws.kraken.com/v2"

	DEFAULT_WEBSOCKET_RESTART_SLEEP_SEC = 30
	DEFAULT_WEBSOCKET_RESTART_LIMIT_NUM = 10
	DEFAULT_WEBSOCKET_RESTART_LIMIT_SEC = 300
	DEFAULT_WEBSOCKET_PENDING_SEC       = 100
)

// WSQuery is one subscribe/unsubscribe message on the public market stream.
type WSQuery struct {
	Method string   `json:"method"`
	Params WSParams `json:"params"`
	ReqId  int64    `json:"req_id,omitempty"`
}

type WSParams struct {
	Channel string   `json:"channel"`
	Symbol  []string `json:"symbol,omitempty"`
	Depth   int      `json:"depth,omitempty"`
}

// WSMarket streams public market data. No credential is involved, the v2
// public stream carries ticker, trade, book and ohlc channels only.
type WSMarket struct {
	WssUrl       string
	RecvHandler  func(string)
	ErrorHandler func(error)

	conn       *websocket.Conn
	connId     string
	subscribed []WSQuery

	restartSleepSec int
	restartLimitNum int // In X(restartLimitSec) seconds, the limit times(restartLimitNum) of restart
	restartLimitSec int
	restartTS       map[int64]string

	lastRecvTS int64
	stopCheck  chan bool
}

func (ws *WSMarket) Start() error {
	if stopErr := ws.startCheck(); stopErr != nil {
		return stopErr
	}

	ws.initDefaultValue()
	conn, _, err := websocket.DefaultDialer.Dial(ws.WssUrl, nil)
	if err != nil {
		if len(ws.restartTS) != 0 {
			ws.Restart()
		}
		return err
	}
	ws.conn = conn
	ws.connId = UUID()
	ws.lastRecvTS = time.Now().Unix()

	go ws.recvRoutine()
	go ws.checkRoutine()
	return nil
}

// Subscribe sends the query and remembers it so a restart resubscribes.
func (ws *WSMarket) Subscribe(q WSQuery) {
	q.Method = "subscribe"
	if err := ws.conn.WriteJSON(q); err != nil {
		ws.ErrorHandler(err)
		return
	}
	ws.subscribed = append(ws.subscribed, q)
}

func (ws *WSMarket) Unsubscribe(q WSQuery) {
	q.Method = "unsubscribe"
	if err := ws.conn.WriteJSON(q); err != nil {
		ws.ErrorHandler(err)
		return
	}
	var remain = make([]WSQuery, 0, len(ws.subscribed))
	for _, sub := range ws.subscribed {
		if sub.Params.Channel != q.Params.Channel {
			remain = append(remain, sub)
		}
	}
	ws.subscribed = remain
}

func (ws *WSMarket) Restart() {
	ws.ErrorHandler(&WSRestartError{
		Msg: fmt.Sprintf("market websocket will restart in next %d seconds...", ws.restartSleepSec),
	})
	ws.restartTS[time.Now().Unix()] = ws.connId
	ws.Stop()

	time.Sleep(time.Duration(ws.restartSleepSec) * time.Second)
	if err := ws.Start(); err != nil {
		ws.ErrorHandler(err)
		return
	}

	for _, q := range ws.subscribed {
		if err := ws.conn.WriteJSON(q); err != nil {
			var errMsg, _ = json.Marshal(q)
			ws.ErrorHandler(fmt.Errorf("resubscribe error: %s", string(errMsg)))
		}
	}
}

func (ws *WSMarket) Stop() {
	if ws.stopCheck != nil {
		ws.stopCheck <- true
	}
	if ws.conn != nil {
		_ = ws.conn.Close()
		ws.conn = nil
	}
	ws.connId = ""
}

func (ws *WSMarket) recvRoutine() {
	for {
		msgType, msg, readErr := ws.conn.ReadMessage()
		if readErr != nil {
			// conn closed by user.
			if strings.Contains(readErr.Error(), "use of closed network connection") {
				return
			}
			ws.ErrorHandler(readErr)
			ws.Restart()
			return
		}

		if msgType != websocket.TextMessage {
			continue
		}

		ws.lastRecvTS = time.Now().Unix()
		var event = struct {
			Channel string `json:"channel"`
		}{}
		_ = json.Unmarshal(msg, &event)
		if event.Channel != "heartbeat" {
			ws.RecvHandler(string(msg))
		}
	}
}

// checkRoutine restarts the stream when nothing has arrived inside the
// pending window, heartbeats included.
func (ws *WSMarket) checkRoutine() {
	var stopChn = make(chan bool, 1)
	ws.stopCheck = stopChn

	var ticker = time.NewTicker(DEFAULT_WEBSOCKET_PENDING_SEC * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if time.Now().Unix()-ws.lastRecvTS > DEFAULT_WEBSOCKET_PENDING_SEC {
				ws.ErrorHandler(fmt.Errorf("recv timeout, last recv ts: %d", ws.lastRecvTS))
				ws.Restart()
				continue
			}
		case _, opened := <-stopChn:
			if opened {
				close(stopChn)
			}
			ws.stopCheck = nil
			return
		}
	}
}

// startCheck refuses to start when the restart budget is spent.
func (ws *WSMarket) startCheck() error {
	var restartNum, limitTS = 0, time.Now().Unix() - int64(ws.restartLimitSec)
	for ts := range ws.restartTS {
		if ts > limitTS {
			restartNum++
		}
	}
	if ws.restartLimitNum > 0 && restartNum > ws.restartLimitNum {
		return &WSStopError{
			Msg: fmt.Sprintf(
				"The ws restarted %d times in %d seconds, stop the ws",
				restartNum, ws.restartLimitSec,
			),
		}
	}
	return nil
}

func (ws *WSMarket) initDefaultValue() {
	if ws.WssUrl == "" {
		ws.WssUrl = WSS_ENDPOINT
	}
	if ws.RecvHandler == nil {
		ws.RecvHandler = func(msg string) {
			log.Println(msg)
		}
	}
	if ws.ErrorHandler == nil {
		ws.ErrorHandler = func(err error) {
			log.Println(err)
		}
	}
	if ws.restartSleepSec == 0 {
		ws.restartSleepSec = DEFAULT_WEBSOCKET_RESTART_SLEEP_SEC
	}
	if ws.restartLimitNum == 0 {
		ws.restartLimitNum = DEFAULT_WEBSOCKET_RESTART_LIMIT_NUM
	}
	if ws.restartLimitSec == 0 {
		ws.restartLimitSec = DEFAULT_WEBSOCKET_RESTART_LIMIT_SEC
	}
	if ws.restartTS == nil {
		ws.restartTS = make(map[int64]string)
	}
}
