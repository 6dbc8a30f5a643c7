package cli

import (
	"fmt"

	"github.com/dan13ram/mint-queue/app"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var createSigner = app.CreateEthereumSigner

const signerCheckMessage = "mintqueue signer check"

func NewSignerCommand(rootOpts *RootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "signer",
		Short: "Show the minting account of the configured signer",
		Long: `Resolves the configured signer (mnemonic, GCP KMS key or private key) and
prints its address. With --check, signs a test digest and verifies the
signature recovers to the same address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := createSigner()
			if err != nil {
				return err
			}
			defer signer.Destroy()

			address := signer.EthAddress()
			result := map[string]any{"address": address.Hex()}

			if check {
				digest := crypto.Keccak256Hash([]byte(signerCheckMessage))
				signature, err := signer.SignHash(digest)
				if err != nil {
					return fmt.Errorf("error signing test digest: %w", err)
				}
				pubKey, err := crypto.SigToPub(digest.Bytes(), signature)
				if err != nil {
					return fmt.Errorf("error recovering signer: %w", err)
				}
				if recovered := crypto.PubkeyToAddress(*pubKey); recovered != address {
					return fmt.Errorf("signature recovers to %s, want %s", recovered.Hex(), address.Hex())
				}
				result["signature"] = fmt.Sprintf("0x%x", signature)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "address:  ", result["address"])
			if check {
				fmt.Fprintln(cmd.OutOrStdout(), "signature:", result["signature"])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "sign a test digest and verify it")

	return cmd
}
