package cli

import (
	"context"
	"fmt"

	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
	"github.com/spf13/cobra"
)

func NewRequeueCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "requeue <request-id>",
		Short: "Queue a fresh mint for a failed request",
		Long: `Creates a new pending mint request for a failed one and links the failed
request to it. Refused when the failed request's signed transaction was mined.
A signed transaction still waiting in a mempool is not detected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := newReceiptReader()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*queue.Timeout())
			defer cancel()

			return withStore(ctx, func(store queue.Store) error {
				replacement, err := queue.Requeue(ctx, store, receipts, args[0])
				if err != nil {
					return fmt.Errorf("requeue %s: %w", args[0], err)
				}
				view := models.NewStatusView(replacement)
				return writeStatus(cmd.OutOrStdout(), rootOpts.Format, &view)
			})
		},
	}
}
