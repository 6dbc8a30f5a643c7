package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestNewMnemonicSigner(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)
	assert.NotNil(t, signer)

	assert.NotNil(t, signer.privKey)
	assert.Equal(t, DefaultETHHDPath, signer.path)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.EthAddress())
}

func TestNewMnemonicSigner_Invalid(t *testing.T) {
	signer, err := NewMnemonicSigner("not a valid mnemonic")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
	assert.Nil(t, signer)
}

func TestEthereumPrivateKeyFromMnemonic(t *testing.T) {
	privKey, err := EthereumPrivateKeyFromMnemonic("  "+testMnemonic+"\n", DefaultETHHDPath)
	assert.NoError(t, err)
	assert.Equal(t, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", common.Bytes2Hex(crypto.FromECDSA(privKey)))

	_, err = EthereumPrivateKeyFromMnemonic(testMnemonic, "m/not/a/path")
	assert.Error(t, err)
}

func TestMnemonicSigner_SignHash(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("test data"))
	sig, err := signer.SignHash(hash)
	assert.NoError(t, err)
	assert.Len(t, sig, 65)
	assert.Less(t, sig[64], byte(2))

	pubKey, err := crypto.SigToPub(hash[:], sig)
	assert.NoError(t, err)
	assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))
}

func TestMnemonicSigner_Destroy(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	signer.Destroy()
	// Nothing to assert here since the Destroy method does nothing
}
