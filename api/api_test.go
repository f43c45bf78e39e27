// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/api/doc"
	"github.com/zemse/parity-esn/log"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	gate, err := admission.New(admission.DefaultOptions())
	require.NoError(t, err)
	ts := httptest.NewServer(New(gate, opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestDocAndVersionHeader(t *testing.T) {
	ts := newTestServer(t, Options{AllowedOrigins: "*"})

	res, err := http.Get(ts.URL + "/doc/txgate.yaml")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, doc.Version(), res.Header.Get("x-txgate-ver"))
	assert.Contains(t, string(body), "/transactions/verify")
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, Options{AllowedOrigins: "https://a.example, https://B.example"})

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/transactions/verify", strings.NewReader(`{"raw":"0x"}`))
	require.NoError(t, err)
	req.Header.Set("Origin", "https://b.example")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "https://b.example", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf, log.LvlInfo, false)
	t.Cleanup(func() { log.SetOutput(io.Discard, log.LvlInfo, false) })

	ts := newTestServer(t, Options{EnableReqLogger: true, EnableMetrics: true})
	res, err := http.Post(ts.URL+"/transactions/verify", "application/json", strings.NewReader(`{"raw":"0xc0"}`))
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	out := buf.String()
	assert.Contains(t, out, "API Request")
	assert.Contains(t, out, "/transactions/verify")
	assert.Contains(t, out, "0xc0")
}

func TestMetricsMiddlewareStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	mrw := newMetricsResponseWriter(rr)
	mrw.WriteHeader(http.StatusForbidden)
	assert.Equal(t, http.StatusForbidden, mrw.statusCode)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
