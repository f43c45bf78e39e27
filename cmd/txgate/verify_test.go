// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/api/transactions"
	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
	"github.com/zemse/parity-esn/tx"
)

func signedRaw(t *testing.T, chainID uint64) (string, eth.Address) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	trx := tx.NewBuilder().
		Nonce(1).
		GasPrice(uint256.NewInt(1_000_000_000)).
		Gas(21000).
		Action(tx.CallAction(eth.MustParseAddress("0x3535353535353535353535353535353535353535"))).
		Value(uint256.NewInt(1)).
		Build()
	signed := tx.MustSign(trx, key, &chainID)

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	return hexutil.Encode(raw), cry.AddressOf(key)
}

func TestVerifyRaws(t *testing.T) {
	gate, err := admission.New(admission.DefaultOptions())
	require.NoError(t, err)

	good, sender := signedRaw(t, 1)
	otherChain, _ := signedRaw(t, 5)

	var out bytes.Buffer
	rejected, err := verifyRaws(&out, gate, []string{good, otherChain, "0x123"})
	require.NoError(t, err)
	assert.Equal(t, 2, rejected)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)

	var items [3]transactions.BatchItem
	for i, line := range lines {
		require.NoError(t, json.Unmarshal([]byte(line), &items[i]))
	}

	assert.True(t, items[0].OK)
	assert.Equal(t, sender, items[0].Tx.Sender)
	assert.Nil(t, items[0].Rejection)

	assert.False(t, items[1].OK)
	assert.Equal(t, "InvalidChainId", items[1].Code)

	assert.False(t, items[2].OK)
	assert.Equal(t, "InvalidRlp", items[2].Code)
}
