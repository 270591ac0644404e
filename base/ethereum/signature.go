package ethereum

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ValidateMsgSignature checks a personal_sign signature of message against signer
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, err
	}
	recoveredAddress, err := ecRecover(accounts.TextHash(message), sig)
	if err != nil {
		return false, err
	}
	return bytes.Equal(common.HexToAddress(signer).Bytes(), recoveredAddress.Bytes()), nil
}

// SignMsg produces the personal_sign signature wallets return for message
func SignMsg(key *ecdsa.PrivateKey, message []byte) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash(message), key)
	if err != nil {
		return "", err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// ecRecover returns the address for the account that was used to create the signature.
func ecRecover(data []byte, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes long", crypto.SignatureLength)
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)

	// both 0/1 and 27/28 recovery ids are in the wild
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}
	if sig[crypto.RecoveryIDOffset] != 27 && sig[crypto.RecoveryIDOffset] != 28 {
		return common.Address{}, fmt.Errorf("invalid Ethereum signature (V is not 27 or 28)")
	}
	sig[crypto.RecoveryIDOffset] -= 27

	rpk, err := crypto.SigToPub(data, sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*rpk), nil
}
