package main

import (
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream/lambdaenv"
)

func newSetEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-env <function> <key> <value>",
		Short: "Set one environment variable on a Lambda function",
		Long: `Set-env wires a freshly-created tracker into the event-ingest function,
e.g.:

  recstream set-env ingest-fn TRACKING_ID 7b6f...`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return fmt.Errorf("load aws config: %w", err)
			}

			setter := lambdaenv.New(awslambda.NewFromConfig(cfg))
			if err := setter.Set(ctx, args[0], args[1], args[2]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s updated\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}
