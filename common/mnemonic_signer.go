package common

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/cosmos/go-bip39"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// MnemonicSigner signs with the key derived at DefaultETHHDPath.
type MnemonicSigner struct {
	*PrivateKeySigner
	path string
}

var _ Signer = &MnemonicSigner{}

func EthereumPrivateKeyFromMnemonic(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	derivationPath, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	account, err := wallet.Derive(derivationPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	return wallet.PrivateKey(account)
}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	privKey, err := EthereumPrivateKeyFromMnemonic(mnemonic, DefaultETHHDPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create ethereum private key: %w", err)
	}

	return &MnemonicSigner{
		PrivateKeySigner: newPrivateKeySigner(privKey),
		path:             DefaultETHHDPath,
	}, nil
}
