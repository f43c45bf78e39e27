// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions_test

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/api/transactions"
	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
	"github.com/zemse/parity-esn/tx"
)

var to = eth.MustParseAddress("0x3535353535353535353535353535353535353535")

func initServer(t *testing.T) *httptest.Server {
	gate, err := admission.New(admission.DefaultOptions())
	require.NoError(t, err)

	router := mux.NewRouter()
	transactions.New(gate).Mount(router, "/transactions")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func rawTx(t *testing.T, key *ecdsa.PrivateKey, nonce uint64, chainID uint64) string {
	trx := tx.NewBuilder().
		Nonce(nonce).
		GasPrice(uint256.NewInt(1)).
		Gas(21000).
		Action(tx.CallAction(to)).
		Value(uint256.NewInt(10)).
		Build()
	signed := tx.MustSign(trx, key, &chainID)
	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	return hexutil.Encode(raw)
}

func httpPost(t *testing.T, url string, body any) (int, []byte) {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer res.Body.Close()
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, r
}

func TestVerify(t *testing.T) {
	ts := initServer(t)
	key, _ := crypto.GenerateKey()

	code, body := httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{
		Raw:       rawTx(t, key, 3, 1),
		Condition: tx.NumberCondition(5),
	})
	require.Equal(t, http.StatusOK, code, string(body))

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, cry.AddressOf(key).String(), got["sender"])
	assert.Equal(t, to.String(), got["to"])
	assert.Equal(t, "0x3", got["nonce"])
	assert.Equal(t, "0xa", got["value"])
	assert.Equal(t, "0x1", got["chainId"])
	assert.Equal(t, false, got["unsigned"])
	assert.NotNil(t, got["publicKey"])
	assert.Equal(t, map[string]any{"block": float64(5)}, got["condition"])
}

func TestVerifyLegacyCreateID(t *testing.T) {
	ts := initServer(t)
	key, _ := crypto.GenerateKey()

	chainID := uint64(1)
	signed := tx.MustSign(tx.NewBuilder().GasPrice(uint256.NewInt(1)).Gas(53000).Build(), key, &chainID)
	enc, err := signed.MarshalBinary()
	require.NoError(t, err)

	// header 0xf8 <len>, then nonce, gasPrice, gas and the 0x80 action
	require.Equal(t, byte(0xf8), enc[0])
	require.Equal(t, byte(0x80), enc[7])
	legacy := append([]byte{}, enc...)
	legacy[7] = 0xc0

	code, body := httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{Raw: hexutil.Encode(legacy)})
	require.Equal(t, http.StatusOK, code, string(body))

	var got transactions.Transaction
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, eth.Keccak256(legacy), got.ID)
	assert.Equal(t, cry.AddressOf(key), got.Sender)
	assert.Nil(t, got.To)
}

func TestVerifyRejected(t *testing.T) {
	ts := initServer(t)
	key, _ := crypto.GenerateKey()

	code, body := httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{Raw: rawTx(t, key, 0, 2)})
	assert.Equal(t, http.StatusForbidden, code)
	var rej transactions.Rejection
	require.NoError(t, json.Unmarshal(body, &rej))
	assert.Equal(t, "InvalidChainId", rej.Code)
	assert.Equal(t, "Transaction of this chain ID is not allowed on this chain.", rej.Message)

	code, body = httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{Raw: "0xc0"})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NoError(t, json.Unmarshal(body, &rej))
	assert.Equal(t, "InvalidRlp", rej.Code)

	code, _ = httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{Raw: "zz"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = httpPost(t, ts.URL+"/transactions/verify", map[string]any{"raw": "0x", "unknown": 1})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestVerifyUnsignedRejectedByDefault(t *testing.T) {
	ts := initServer(t)
	unsigned := tx.NullSign(tx.NewBuilder().Gas(21000).Build(), 1)
	raw, err := unsigned.MarshalBinary()
	require.NoError(t, err)

	code, body := httpPost(t, ts.URL+"/transactions/verify", transactions.RawTx{Raw: hexutil.Encode(raw)})
	assert.Equal(t, http.StatusForbidden, code)
	var rej transactions.Rejection
	require.NoError(t, json.Unmarshal(body, &rej))
	assert.Equal(t, "InvalidSignature", rej.Code)
}

func TestVerifyBatch(t *testing.T) {
	ts := initServer(t)
	key, _ := crypto.GenerateKey()

	code, body := httpPost(t, ts.URL+"/transactions/verify/batch", transactions.RawBatch{Raws: []string{
		rawTx(t, key, 0, 1),
		"0xzz",
		rawTx(t, key, 1, 9),
		rawTx(t, key, 2, 1),
	}})
	require.Equal(t, http.StatusOK, code, string(body))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 4)

	assert.Equal(t, true, items[0]["ok"])
	assert.Equal(t, "0x0", items[0]["tx"].(map[string]any)["nonce"])
	assert.Nil(t, items[0]["code"])

	assert.Equal(t, false, items[1]["ok"])
	assert.Equal(t, "InvalidRlp", items[1]["code"])

	assert.Equal(t, false, items[2]["ok"])
	assert.Equal(t, "InvalidChainId", items[2]["code"])
	assert.Nil(t, items[2]["tx"])

	assert.Equal(t, true, items[3]["ok"])
	assert.Equal(t, "0x2", items[3]["tx"].(map[string]any)["nonce"])
}

func TestVerifyBatchTooLarge(t *testing.T) {
	ts := initServer(t)
	raws := make([]string, transactions.MaxBatchSize+1)
	code, _ := httpPost(t, ts.URL+"/transactions/verify/batch", transactions.RawBatch{Raws: raws})
	assert.Equal(t, http.StatusBadRequest, code)
}
