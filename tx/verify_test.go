// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemse/parity-esn/eth"
)

var (
	testKey, _  = crypto.HexToECDSA("4646464646464646464646464646464646464646464646464646464646464646")
	testAddress = eth.MustParseAddress("0x9d8a62f656a8d1615c1294fd71e9cfb3e4855a4f")
	curveN, _   = uint256.FromHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

func u64(v uint64) *uint64 { return &v }

// highS returns trx with s flipped to n - s, which recovers the same key with the other parity.
func highS(trx *Transaction) *Transaction {
	s := new(uint256.Int).Sub(curveN, trx.body.S)
	v := trx.body.V
	if trx.StandardV() == 0 {
		v++
	} else {
		v--
	}
	return trx.withSignature(v, trx.body.R, s)
}

func newTestTx() *Transaction {
	return NewBuilder().
		Nonce(9).
		GasPrice(uint256.NewInt(20_000_000_000)).
		Gas(21000).
		Action(CallAction(eth.MustParseAddress("0x3535353535353535353535353535353535353535"))).
		Value(uint256.NewInt(1_000_000_000_000_000_000)).
		Build()
}

func TestVerifySignedEIP155(t *testing.T) {
	signed := MustSign(newTestTx(), testKey, u64(1))

	basic, err := VerifyBasic(signed, true, u64(1), false)
	require.NoError(t, err)
	assert.Same(t, signed, basic.Unverified())

	verified, err := VerifySignature(basic)
	require.NoError(t, err)
	assert.Equal(t, testAddress, verified.Sender())
	require.NotNil(t, verified.Public())
	assert.Equal(t, testAddress, verified.Public().Address())
	assert.Equal(t, signed.Hash(), verified.Hash())
}

func TestVerifiedAttach(t *testing.T) {
	signed := MustSign(newTestTx(), testKey, u64(1))
	basic, err := VerifyBasic(signed, true, u64(1), false)
	require.NoError(t, err)
	verified, err := VerifySignature(basic)
	require.NoError(t, err)

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	dup := new(Transaction)
	require.NoError(t, dup.UnmarshalBinary(raw))
	dupBasic, err := VerifyBasic(dup, true, u64(1), false)
	require.NoError(t, err)

	attached, ok := verified.Attach(dupBasic)
	require.True(t, ok)
	assert.Same(t, dup, attached.Unverified())
	assert.Same(t, signed, verified.Unverified())
	assert.Equal(t, testAddress, attached.Sender())
	assert.Equal(t, verified.Public(), attached.Public())

	other, err := VerifyBasic(MustSign(newTestTx(), testKey, u64(2)), true, u64(2), false)
	require.NoError(t, err)
	_, ok = verified.Attach(other)
	assert.False(t, ok)
	_, ok = verified.Attach(nil)
	assert.False(t, ok)
}

func TestVerifyDecodedEIP155(t *testing.T) {
	basic, err := VerifyBasic(decodeTx(t, eip155Raw), true, u64(1), false)
	require.NoError(t, err)
	verified, err := VerifySignature(basic)
	require.NoError(t, err)
	assert.Equal(t, testAddress, verified.Sender())
}

func TestVerifyWrongChainID(t *testing.T) {
	signed := MustSign(newTestTx(), testKey, u64(1))

	_, err := VerifyBasic(signed, true, u64(2), false)
	assert.ErrorIs(t, err, ErrInvalidChainID)
	assert.True(t, IsInvalidChainID(err))

	_, err = VerifyBasic(signed, true, nil, false)
	assert.ErrorIs(t, err, ErrInvalidChainID)
}

func TestVerifyNoReplayProtection(t *testing.T) {
	signed := MustSign(newTestTx(), testKey, nil)
	assert.Nil(t, signed.ChainID())
	assert.Contains(t, []uint64{27, 28}, signed.V())

	for _, chainID := range []*uint64{nil, u64(1), u64(2)} {
		basic, err := VerifyBasic(signed, true, chainID, false)
		require.NoError(t, err)
		verified, err := VerifySignature(basic)
		require.NoError(t, err)
		assert.Equal(t, testAddress, verified.Sender())
	}
}

func TestVerifyHighS(t *testing.T) {
	for _, chainID := range []*uint64{nil, u64(1)} {
		signed := highS(MustSign(newTestTx(), testKey, chainID))
		assert.False(t, signed.Signature().IsLowS())

		_, err := VerifyBasic(signed, true, chainID, false)
		assert.True(t, IsInvalidSignature(err))
		_, err = VerifyBasic(signed, true, chainID, true)
		assert.True(t, IsInvalidSignature(err))

		// accepted when low s is not enforced, and still recovers the signer
		basic, err := VerifyBasic(signed, false, chainID, false)
		require.NoError(t, err)
		verified, err := VerifySignature(basic)
		require.NoError(t, err)
		assert.Equal(t, testAddress, verified.Sender())
	}
}

func TestVerifyUnsigned(t *testing.T) {
	unsigned := NullSign(NewBuilder().Gas(100000).Data([]byte{0x60}).Build(), 1).Unverified()
	require.True(t, unsigned.IsUnsigned())

	for _, checkLowS := range []bool{true, false} {
		_, err := VerifyBasic(unsigned, checkLowS, u64(1), false)
		assert.True(t, IsInvalidSignature(err))
	}

	basic, err := VerifyBasic(unsigned, true, u64(1), true)
	require.NoError(t, err)
	verified, err := VerifySignature(basic)
	require.NoError(t, err)
	assert.Equal(t, UnsignedSender(), verified.Sender())
	assert.Nil(t, verified.Public())

	// the null signature binds the transaction to chain 1
	_, err = VerifyBasic(unsigned, true, u64(2), true)
	assert.ErrorIs(t, err, ErrInvalidChainID)
}

func TestVerifyUnsignedNonZeroFields(t *testing.T) {
	for _, b := range []*Builder{
		NewBuilder().Nonce(1),
		NewBuilder().GasPrice(uint256.NewInt(1)),
		NewBuilder().Value(uint256.NewInt(1)),
	} {
		unsigned := NullSign(b.Build(), 1).Unverified()
		_, err := VerifyBasic(unsigned, true, u64(1), true)
		assert.True(t, IsInvalidSignature(err))
		assert.EqualError(t, err, "Transaction has invalid signature: invalid EC signature.")
	}
}

func TestVerifyCheckOrder(t *testing.T) {
	// high s and a foreign chain id: the signature check wins
	signed := highS(MustSign(newTestTx(), testKey, u64(1)))
	_, err := VerifyBasic(signed, true, u64(2), false)
	assert.True(t, IsInvalidSignature(err))

	// unsigned with non zero nonce and a foreign chain id
	unsigned := NullSign(NewBuilder().Nonce(1).Build(), 1).Unverified()
	_, err = VerifyBasic(unsigned, true, u64(2), true)
	assert.True(t, IsInvalidSignature(err))
}

func TestVerifyUnrecoverable(t *testing.T) {
	trx := newTestTx()
	for _, bad := range []*Transaction{
		trx.withSignature(27, uint256.NewInt(0), uint256.NewInt(1)),
		trx.withSignature(27, curveN, uint256.NewInt(1)),
		trx.withSignature(30, uint256.NewInt(1), uint256.NewInt(1)),
	} {
		basic, err := VerifyBasic(bad, true, nil, false)
		require.NoError(t, err)
		_, err = VerifySignature(basic)
		assert.True(t, IsInvalidSignature(err), "%v", err)
	}
}

func TestVerifyNil(t *testing.T) {
	_, err := VerifyBasic(nil, true, nil, false)
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, CodeInvalidRLP, code)

	_, err = VerifySignature(nil)
	assert.Error(t, err)
}

func TestSenderConstants(t *testing.T) {
	assert.Equal(t, "0xffffffffffffffffffffffffffffffffffffffff", UnsignedSender().String())
	assert.Equal(t, "0xfffffffffffffffffffffffffffffffffffffffe", SystemAddress().String())

	sender := UnsignedSender()
	sender[0] = 0
	system := SystemAddress()
	system[19] = 0
	assert.NotEqual(t, sender, UnsignedSender())
	assert.NotEqual(t, system, SystemAddress())
	assert.Equal(t, "0xffffffffffffffffffffffffffffffffffffffff", UnsignedSender().String())
	assert.Equal(t, "0xfffffffffffffffffffffffffffffffffffffffe", SystemAddress().String())
}
