// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(f HandlerFunc) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	WrapHandlerFunc(f)(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestWrapHandlerFunc(t *testing.T) {
	rr := serve(func(w http.ResponseWriter, _ *http.Request) error {
		return WriteJSON(w, map[string]int{"a": 1})
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, JSONContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, "{\"a\":1}\n", rr.Body.String())

	rr = serve(func(http.ResponseWriter, *http.Request) error {
		return BadRequest(errors.New("bad raw"))
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "bad raw\n", rr.Body.String())

	rr = serve(func(http.ResponseWriter, *http.Request) error {
		return HTTPErrorWithBody(errors.New("rejected"), http.StatusForbidden, map[string]string{"code": "Old"})
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"code":"Old"}`, rr.Body.String())

	rr = serve(func(http.ResponseWriter, *http.Request) error {
		return errors.New("boom")
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestParseJSONStrict(t *testing.T) {
	var v struct {
		Raw string `json:"raw"`
	}
	require.NoError(t, ParseJSON(strings.NewReader(`{"raw":"0x"}`), &v))
	assert.Equal(t, "0x", v.Raw)
	assert.Error(t, ParseJSON(strings.NewReader(`{"raw":"0x","extra":1}`), &v))
}
