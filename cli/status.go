package cli

import (
	"context"

	"github.com/dan13ram/mint-queue/queue"
	"github.com/spf13/cobra"
)

func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <request-id|external-ref>",
		Short: "Show the status of a mint request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), queue.Timeout())
			defer cancel()

			return withStore(ctx, func(store queue.Store) error {
				view, err := queue.QueryStatus(ctx, store, args[0])
				if err != nil {
					return err
				}
				return writeStatus(cmd.OutOrStdout(), rootOpts.Format, view)
			})
		},
	}
}
