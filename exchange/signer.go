package exchange

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/MarcelRaschke/ccxt/common/crypto"
)

// signing headers
const (
	HeaderAPIKey    = "X-API-KEY"
	HeaderTimestamp = "X-TIMESTAMP"
	HeaderSignature = "X-SIGNATURE"
)

// SignRequest carries the request fields a Signer may read and the headers
// it writes
type SignRequest struct {
	Method    string
	Path      string
	Body      string
	Timestamp int64
	Headers   http.Header
}

// Signer authenticates outgoing requests
type Signer interface {
	Sign(r *SignRequest) error
}

// HmacSigner signs requests with hex encoded HMAC-SHA256 of
// timestamp + method + path + body
type HmacSigner struct {
	apiKey string
	secret string
}

// NewHmacSigner returns a HmacSigner of the credentials
func NewHmacSigner(apiKey, secret string) *HmacSigner {
	return &HmacSigner{
		apiKey: apiKey,
		secret: secret,
	}
}

// Sign writes the auth headers of the request
func (s *HmacSigner) Sign(r *SignRequest) error {
	if len(s.apiKey) == 0 || len(s.secret) == 0 {
		return errors.WithStack(ErrAuthentication)
	}
	ts := strconv.FormatInt(r.Timestamp, 10)
	payload := ts + r.Method + r.Path + r.Body
	sig := crypto.HmacHex([]byte(payload), []byte(s.secret), crypto.AlgoSha256)
	r.Headers.Set(HeaderAPIKey, s.apiKey)
	r.Headers.Set(HeaderTimestamp, ts)
	r.Headers.Set(HeaderSignature, sig)
	return nil
}
