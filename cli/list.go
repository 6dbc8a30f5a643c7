package cli

import (
	"context"
	"fmt"

	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
	"github.com/spf13/cobra"
)

type ListOptions struct {
	Statuses    []string
	Recipient   string
	ExternalRef string
	Limit       int64
	Skip        int64
}

func (o *ListOptions) filter() (models.ListFilter, error) {
	filter := models.ListFilter{
		Recipient:   o.Recipient,
		ExternalRef: o.ExternalRef,
		Limit:       o.Limit,
		Skip:        o.Skip,
	}
	for _, s := range o.Statuses {
		status := models.MintStatus(s)
		if !status.Valid() {
			return filter, fmt.Errorf("invalid status %q", s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if o.Limit < 0 || o.Skip < 0 {
		return filter, fmt.Errorf("limit and skip must not be negative")
	}
	return filter, nil
}

func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mint requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.filter()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), queue.Timeout())
			defer cancel()

			return withStore(ctx, func(store queue.Store) error {
				mints, err := store.List(ctx, filter)
				if err != nil {
					return err
				}
				return writeList(cmd.OutOrStdout(), rootOpts.Format, mints)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Statuses, "status", "s", nil, "only requests in these statuses")
	cmd.Flags().StringVar(&opts.Recipient, "recipient", "", "only requests for this wallet")
	cmd.Flags().StringVar(&opts.ExternalRef, "external-ref", "", "only the request with this external ref")
	cmd.Flags().Int64VarP(&opts.Limit, "limit", "n", queue.DefaultListLimit, "maximum number of requests")
	cmd.Flags().Int64Var(&opts.Skip, "skip", 0, "number of requests to skip")

	return cmd
}
