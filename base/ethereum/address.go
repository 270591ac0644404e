package ethereum

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return privateKey, privateKey.Public().(*ecdsa.PublicKey), nil
}

// AddressOf returns the lower case hex address of pub
func AddressOf(pub *ecdsa.PublicKey) string {
	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex())
}
