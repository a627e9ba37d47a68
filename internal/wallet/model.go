package wallet

import "time"

// Wallet is a custodial keypair provisioned for a user. PrivateKey never
// leaves the server; handlers serialize PublicKey only.
type Wallet struct {
	ID         string
	OwnerID    string
	PublicKey  string
	PrivateKey string
	CreatedAt  time.Time
}
