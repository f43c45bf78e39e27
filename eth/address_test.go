// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package eth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	require.NoError(t, err)
	assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", addr.String())

	noPrefix, err := ParseAddress("7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	require.NoError(t, err)
	assert.Equal(t, addr, noPrefix)

	_, err = ParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ff")
	assert.EqualError(t, err, "invalid length")

	_, err = ParseAddress("1x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.EqualError(t, err, "invalid prefix")

	_, err = ParseAddress("0xzz67d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")

	data, err := json.Marshal(&addr)
	require.NoError(t, err)
	assert.Equal(t, `"0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"`, string(data))

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)
	assert.False(t, decoded.IsZero())
	assert.True(t, Address{}.IsZero())
}

func TestBytesToAddress(t *testing.T) {
	addr := BytesToAddress([]byte{0x01, 0x02})
	assert.Equal(t, "0x0000000000000000000000000000000000000102", addr.String())
}
