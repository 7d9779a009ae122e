package krakenapi

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewHttpRequest performs one blocking HTTP exchange and returns the raw body.
// The body comes back whatever the status code is: kraken reports logical
// failures inside the JSON body, so a non-2xx status is still a usable reply.
// Only connection, protocol and read failures become a *TransportError.
func NewHttpRequest(
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requstHeaders map[string]string,
) ([]byte, error) {
	req, err := http.NewRequest(reqType, reqUrl, strings.NewReader(postData))
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set(
			"User-Agent",
			"Mozilla/5.0 (Windows NT 5.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/31.0.1650.63 Safari/537.36")
	}
	if requstHeaders != nil {
		for k, v := range requstHeaders {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	defer resp.Body.Close()

	bodyData, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	logrus.WithFields(logrus.Fields{
		"method": reqType,
		"url":    reqUrl,
		"status": resp.StatusCode,
		"bytes":  len(bodyData),
	}).Debug("http exchange done")

	return bodyData, nil
}
