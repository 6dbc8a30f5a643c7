package app

import (
	"fmt"

	"github.com/dan13ram/mint-queue/common"
	log "github.com/sirupsen/logrus"
)

// CreateEthereumSigner picks the signing backend for the minting account.
// A mnemonic wins over a KMS key, which wins over a raw private key.
func CreateEthereumSigner() (common.Signer, error) {
	config := Config.Ethereum
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" && config.PrivateKey == "" {
		return nil, fmt.Errorf("mnemonic, gcp kms key name and private key are all empty")
	}

	var signer common.Signer
	var err error

	switch {
	case config.Mnemonic != "":
		log.Debug("[SIGNER] Using mnemonic signer")
		signer, err = common.NewMnemonicSigner(config.Mnemonic)
	case config.GcpKmsKeyName != "":
		log.Debug("[SIGNER] Using gcp kms signer")
		signer, err = common.NewGcpKmsSigner(config.GcpKmsKeyName)
	default:
		log.Debug("[SIGNER] Using private key signer")
		signer, err = common.NewPrivateKeySigner(config.PrivateKey)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing ethereum signer: %w", err)
	}

	log.Debugf("[SIGNER] Ethereum address: %s", signer.EthAddress().Hex())
	return signer, nil
}
