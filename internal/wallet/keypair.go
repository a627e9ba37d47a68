package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// newKeypair generates a fresh ed25519 keypair in the encoding the target
// ledger expects: base58 public key, hex 64-byte secret.
func newKeypair() (publicKey, privateKey string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", err
	}
	return base58.Encode(pub), hex.EncodeToString(priv), nil
}
