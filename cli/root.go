package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/eth/client"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	ConfigFile string
	EnvFile    string
	Format     string
}

var ValidFormats = []string{"text", "json"}

var initConfig = func(opts *RootOptions) error {
	configFile, envFile := opts.ConfigFile, opts.EnvFile
	var err error
	if configFile != "" {
		if configFile, err = filepath.Abs(configFile); err != nil {
			return err
		}
	}
	if envFile != "" {
		if envFile, err = filepath.Abs(envFile); err != nil {
			return err
		}
	}
	app.InitConfig(configFile, envFile)
	app.InitLogger()
	return nil
}

var openStore = func(ctx context.Context) (queue.Store, error) {
	if app.Config.Queue.Backend == models.QueueBackendMongo && app.DB == nil {
		app.InitDB()
	}
	return queue.NewStore(ctx)
}

var newReceiptReader = func() (queue.ReceiptReader, error) {
	ethClient, err := client.NewClient()
	if err != nil {
		return nil, fmt.Errorf("error connecting to ethereum: %w", err)
	}
	return client.NewReceiptReader(ethClient), nil
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mintqueue",
		Short: "Mint queue - paid orders to on-chain mints",
		Long:  "Turns verified payment events into confirmed NFT mint transactions through a durable queue.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return initConfig(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "path to the yaml config file")
	cmd.PersistentFlags().StringVarP(&opts.EnvFile, "env", "e", "", "path to an env file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRequeueCommand(opts))
	cmd.AddCommand(NewSignerCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Execute runs the root command with the process arguments.
func Execute() error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return NewRootCommand().Execute()
}

func withStore(ctx context.Context, fn func(store queue.Store) error) error {
	store, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("error opening queue store: %w", err)
	}
	defer store.Close()
	return fn(store)
}
