package common

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Signer signs 32-byte digests with the operator key.
// Signatures are 65 bytes [R || S || V] with V in {0, 1}.
type Signer interface {
	SignHash(hash common.Hash) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}
