package ethereum

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "this is signature message template %s"
	privateKey, publicKey, err := GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	nonce := "123456"
	message := []byte(fmt.Sprintf(messageTemplate, nonce))
	hash := accounts.TextHash(message)
	signature, err := crypto.Sign(hash, privateKey)
	assert.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect nonce
	res2, err := ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// incorrect signer
	_, pubKey, err := GenerateKey()
	assert.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)
}

func TestSignMsg(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)

	message := []byte("sign in with nonce abc")
	sig, err := SignMsg(privateKey, message)
	req.NoError(err)

	valid, err := ValidateMsgSignature(message, sig, AddressOf(publicKey))
	req.NoError(err)
	req.True(valid)

	// validation does not consume the signature bytes
	valid, err = ValidateMsgSignature(message, sig, AddressOf(publicKey))
	req.NoError(err)
	req.True(valid)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	req := require.New(t)

	_, err := ValidateMsgSignature([]byte("msg"), "not-hex", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)

	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
}
