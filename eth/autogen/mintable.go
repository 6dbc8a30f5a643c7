package autogen

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MintableABI is the entry point shared by every mint target: mint(address to, string uri).
const MintableABI = `[{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"string","name":"uri","type":"string"}],"name":"mint","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}]`

const MintMethod = "mint"

var (
	mintableOnce   sync.Once
	mintableParsed abi.ABI
	mintableErr    error
)

// GetMintableAbi parses MintableABI once.
func GetMintableAbi() (*abi.ABI, error) {
	mintableOnce.Do(func() {
		mintableParsed, mintableErr = abi.JSON(strings.NewReader(MintableABI))
	})
	if mintableErr != nil {
		return nil, mintableErr
	}
	return &mintableParsed, nil
}
