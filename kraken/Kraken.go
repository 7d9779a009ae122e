package kraken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	. "krakenapi"
)

const (
	ENDPOINT    = "https://api.kraken.com"
	API_PUBLIC  = "/0/public/"
	API_PRIVATE = "/0/private/"

	SECRET_ENCODED_LEN = 88
)

func New(config *APIConfig) *Kraken {
	if config.Endpoint == "" {
		config.Endpoint = ENDPOINT
	}
	return &Kraken{
		config:  config,
		options: map[ApiOption]string{},
		locker:  new(sync.Mutex),
	}
}

// Kraken is a handle on the exchange. Options set on it persist across calls
// until cleared. Private calls serialize on the internal locker, the exchange
// requires nonces from one credential to be strictly increasing.
type Kraken struct {
	config  *APIConfig
	options map[ApiOption]string
	locker  *sync.Mutex

	lastNonce int64
}

func (k *Kraken) GetExchangeName() string {
	return KRAKEN
}

// nonce returns wall-clock microseconds, bumped past the last issued value so
// the sequence stays strictly increasing even across clock stalls or backward
// jumps. Callers must hold the locker.
func (k *Kraken) nonce() string {
	var nowMicro = time.Now().UnixNano() / 1000
	if nowMicro <= k.lastNonce {
		nowMicro = k.lastNonce + 1
	}
	k.lastNonce = nowMicro
	return strconv.FormatInt(nowMicro, 10)
}

// sign computes the API-Sign header value for one private call:
// base64(HMAC-SHA512("/0/private/" + uri || SHA256(nonce + postData), key))
// with the base64-decoded secret as the mac key.
func (k *Kraken) sign(uri, nonce, postData string) (string, error) {
	secretKey, err := base64.StdEncoding.DecodeString(k.config.ApiSecretKey)
	if err != nil {
		return "", &SigningError{Msg: "api secret is not valid base64", Cause: err}
	}

	var digest = sha256.Sum256([]byte(nonce + postData))
	var mac = hmac.New(sha512.New, secretKey)
	mac.Write([]byte(API_PRIVATE + uri))
	mac.Write(digest[:])
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// DoRequest issues an unauthenticated GET to /0/public/<uri>. The raw body is
// returned; it is additionally unmarshalled into response when non-nil.
func (k *Kraken) DoRequest(uri, rawQuery string, response interface{}) ([]byte, error) {
	var reqUrl = k.config.Endpoint + API_PUBLIC + uri
	if rawQuery != "" {
		reqUrl += "?" + rawQuery
	}

	resp, err := NewHttpRequest(
		k.config.HttpClient,
		http.MethodGet,
		reqUrl,
		"",
		map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
		},
	)
	if err != nil {
		return nil, err
	}

	nowTimestamp := time.Now().Unix() * 1000
	if k.config.LastTimestamp < nowTimestamp {
		k.config.LastTimestamp = nowTimestamp
	}
	if response != nil {
		return resp, json.Unmarshal(resp, response)
	}
	return resp, nil
}

// DoSignRequest issues an authenticated POST to /0/private/<uri>. The uri is
// the bare endpoint name, never mixed with the query; rawQuery becomes the
// POST body with the nonce parameter appended.
func (k *Kraken) DoSignRequest(uri, rawQuery string, response interface{}) ([]byte, error) {
	if len(k.config.ApiSecretKey) != SECRET_ENCODED_LEN {
		return nil, &CredentialFormatError{Length: len(k.config.ApiSecretKey)}
	}

	k.locker.Lock()
	defer k.locker.Unlock()

	var nonce = k.nonce()
	var postData = "nonce=" + nonce
	if rawQuery != "" {
		postData = rawQuery + "&" + postData
	}

	sign, err := k.sign(uri, nonce, postData)
	if err != nil {
		return nil, err
	}

	resp, err := NewHttpRequest(
		k.config.HttpClient,
		http.MethodPost,
		k.config.Endpoint+API_PRIVATE+uri,
		postData,
		map[string]string{
			"API-Key":      k.config.ApiKey,
			"API-Sign":     sign,
			"Content-Type": "application/x-www-form-urlencoded",
		},
	)
	if err != nil {
		return nil, err
	}

	nowTimestamp := time.Now().Unix() * 1000
	if k.config.LastTimestamp < nowTimestamp {
		k.config.LastTimestamp = nowTimestamp
	}
	if response != nil {
		return resp, json.Unmarshal(resp, response)
	}
	return resp, nil
}
