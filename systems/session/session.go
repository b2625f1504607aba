// Package session implements the authenticated PETLIBRO API session.
package session

import (
	"bytes"
	"context"
	"crypto/md5" // nolint: gosec
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Credentials holds account data used for (re-)login.
type Credentials struct {
	Email    string
	Password string
	Region   string
}

// ConstructSession has all data required for a new session.
type ConstructSession struct {
	BaseURL     string
	Transport   *http.Client
	Credentials Credentials
	Timezone    string
	Token       string
	Secret      common.ISecretProvider
	Logger      common.ILoggerProvider
}

// Session wraps the HTTP transport and implements the vendor envelope
// protocol, including transparent re-login on session expiry.
type Session struct {
	baseURL   string
	transport *http.Client
	creds     Credentials
	timezone  string
	logger    common.ILoggerProvider
	secret    common.ISecretProvider

	mutex  sync.RWMutex
	token  string
	flight singleflight.Group
}

// Response envelope used by every vendor endpoint.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// NewSession constructs a new vendor API session.
// A token persisted by a previous run is picked up from the secret store
// so restarts can skip a fresh login.
func NewSession(ctor *ConstructSession) *Session {
	transport := ctor.Transport
	if nil == transport {
		transport = &http.Client{Timeout: 15 * time.Second}
	}

	token := ctor.Token
	if "" == token && nil != ctor.Secret {
		saved, err := ctor.Secret.Get(TokenSecretName)
		if err == nil {
			token = saved
		}
	}

	return &Session{
		baseURL:   ctor.BaseURL,
		transport: transport,
		creds:     ctor.Credentials,
		timezone:  ctor.Timezone,
		logger:    ctor.Logger,
		secret:    ctor.Secret,
		token:     token,
	}
}

// Token returns currently held auth token.
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// HashPassword generates the password hash expected by the vendor API.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password)) // nolint: gosec
	return hex.EncodeToString(sum[:])
}

// Post performs an enveloped POST call and returns the data payload.
// A not-yet-login code triggers exactly one re-login and one retry;
// a second expiry on the retry surfaces as ErrNotAuthenticated.
func (s *Session) Post(ctx context.Context, path string, body map[string]interface{}) (json.RawMessage, error) {
	env, err := s.do(ctx, path, body, true)
	if err != nil {
		return nil, err
	}

	switch env.Code {
	case codeOK:
		return env.Data, nil
	case codeInvalidAuth:
		return nil, &ErrInvalidAuth{}
	case codeNotLoggedIn:
	default:
		return nil, &ErrAPI{Code: env.Code, Msg: env.Msg}
	}

	s.logger.Warn("Session expired, attempting re-login",
		common.LogSystemToken, logSystem, common.LogURLToken, path)

	if err := s.Login(ctx); err != nil {
		return nil, errors.Wrap(err, "re-login failed")
	}

	env, err = s.do(ctx, path, body, true)
	if err != nil {
		return nil, err
	}

	switch env.Code {
	case codeOK:
		return env.Data, nil
	case codeInvalidAuth:
		return nil, &ErrInvalidAuth{}
	case codeNotLoggedIn:
		return nil, &ErrNotAuthenticated{}
	default:
		return nil, &ErrAPI{Code: env.Code, Msg: env.Msg}
	}
}

// PostSerial performs an enveloped POST call with the device serial
// embedded both as a generic id and as deviceSn, per vendor convention.
func (s *Session) PostSerial(ctx context.Context, path string, serial string,
	body map[string]interface{}) (json.RawMessage, error) {
	payload := make(map[string]interface{}, len(body)+2)
	for k, v := range body {
		payload[k] = v
	}

	payload["id"] = serial
	payload["deviceSn"] = serial
	return s.Post(ctx, path, payload)
}

// Login performs account login and replaces the held token.
// Concurrent callers share a single login call; the token is swapped
// only after a fully successful login.
func (s *Session) Login(ctx context.Context) error {
	_, err, _ := s.flight.Do("login", func() (interface{}, error) {
		return nil, s.login(ctx)
	})

	return err
}

// Logout invalidates the session and clears the held token.
func (s *Session) Logout(ctx context.Context) error {
	_, err := s.Post(ctx, logoutPath, map[string]interface{}{})
	if err != nil {
		return err
	}

	s.mutex.Lock()
	s.token = ""
	s.mutex.Unlock()
	return nil
}

// Performs the actual login call.
func (s *Session) login(ctx context.Context) error {
	body := map[string]interface{}{
		"appId":              appID,
		"appSn":              appSn,
		"country":            s.creds.Region,
		"email":              s.creds.Email,
		"password":           HashPassword(s.creds.Password),
		"phoneBrand":         "",
		"phoneSystemVersion": "",
		"timezone":           s.timezone,
		"thirdId":            nil,
		"type":               nil,
	}

	env, err := s.do(ctx, loginPath, body, false)
	if err != nil {
		return err
	}

	if codeInvalidAuth == env.Code {
		return &ErrInvalidAuth{}
	}

	if codeOK != env.Code {
		return &ErrAPI{Code: env.Code, Msg: env.Msg}
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || "" == data.Token {
		return &ErrBadPayload{}
	}

	s.setToken(data.Token)
	s.logger.Debug("Login successful", common.LogSystemToken, logSystem)
	return nil
}

// Replaces the held token and persists it to the host's secret store.
func (s *Session) setToken(token string) {
	s.mutex.Lock()
	s.token = token
	s.mutex.Unlock()

	if nil == s.secret {
		return
	}

	if err := s.secret.Set(TokenSecretName, token); err != nil {
		s.logger.Warn("Failed to persist auth token",
			common.LogSystemToken, logSystem, common.LogSecretToken, TokenSecretName)
	}
}

// Performs one enveloped call without any auth-recovery logic.
func (s *Session) do(ctx context.Context, path string, body map[string]interface{},
	withToken bool) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal failed")
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "request build failed")
	}

	req = req.WithContext(ctx)
	req.Header.Set("source", headerSource)
	req.Header.Set("language", headerLanguage)
	req.Header.Set("timezone", s.timezone)
	req.Header.Set("version", headerVersion)
	req.Header.Set("Content-Type", "application/json")

	if withToken {
		if token := s.Token(); "" != token {
			req.Header.Set("token", token)
		}
	}

	resp, err := s.transport.Do(req)
	if err != nil {
		return nil, &ErrRequestFailed{Err: err}
	}

	defer resp.Body.Close() // nolint: errcheck

	if http.StatusOK != resp.StatusCode {
		return nil, &ErrBadStatus{Status: resp.StatusCode}
	}

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, &ErrBadPayload{}
	}

	return env, nil
}
