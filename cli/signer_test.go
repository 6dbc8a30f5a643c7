package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKey    = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testSignerAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func usePrivateKeySigner(t *testing.T) {
	useTestStore(t)
	old := app.Config.Ethereum
	t.Cleanup(func() { app.Config.Ethereum = old })
	app.Config.Ethereum.Mnemonic = ""
	app.Config.Ethereum.GcpKmsKeyName = ""
	app.Config.Ethereum.PrivateKey = testPrivateKey
}

func TestSignerCommand(t *testing.T) {
	t.Run("Address", func(t *testing.T) {
		usePrivateKeySigner(t)

		out, err := execute(t, "signer")

		require.NoError(t, err)
		assert.Contains(t, out, testSignerAddress)
		assert.NotContains(t, out, "signature")
	})

	t.Run("Check Json", func(t *testing.T) {
		usePrivateKeySigner(t)

		out, err := execute(t, "signer", "--check", "--format", "json")

		require.NoError(t, err)
		var result map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, testSignerAddress, result["address"])
		assert.Len(t, result["signature"], 2+65*2)
	})

	t.Run("No Key Configured", func(t *testing.T) {
		usePrivateKeySigner(t)
		app.Config.Ethereum.PrivateKey = ""

		_, err := execute(t, "signer")

		assert.ErrorContains(t, err, "all empty")
	})

	t.Run("Signer Error", func(t *testing.T) {
		usePrivateKeySigner(t)
		signErr := errors.New("kms unavailable")
		old := createSigner
		t.Cleanup(func() { createSigner = old })
		createSigner = func() (common.Signer, error) { return nil, signErr }

		_, err := execute(t, "signer", "--check")

		assert.ErrorIs(t, err, signErr)
	})
}
