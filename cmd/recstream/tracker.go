package main

import (
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream/recommender"
	"github.com/hupe1980/recstream/recommender/personalize"
)

func newTrackerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage event trackers on the recommendation service",
	}

	cmd.AddCommand(newTrackerCreateCmd(), newTrackerDescribeCmd())

	return cmd
}

func newPersonalizeClient(cmd *cobra.Command) (recommender.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return personalize.NewFromConfig(cfg), nil
}

func newTrackerCreateCmd() *cobra.Command {
	var datasetGroupARN string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an event tracker in a dataset group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPersonalizeClient(cmd)
			if err != nil {
				return err
			}

			tracker, err := client.CreateEventTracker(cmd.Context(), args[0], datasetGroupARN)
			if err != nil {
				return err
			}

			printTracker(cmd, tracker)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetGroupARN, "dataset-group-arn", "", "dataset group ARN")
	_ = cmd.MarkFlagRequired("dataset-group-arn")

	return cmd
}

func newTrackerDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <tracker-arn>",
		Short: "Show the state of an event tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newPersonalizeClient(cmd)
			if err != nil {
				return err
			}

			tracker, err := client.DescribeEventTracker(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printTracker(cmd, tracker)
			return nil
		},
	}
}

func printTracker(cmd *cobra.Command, t *recommender.Tracker) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"name:        %s\narn:         %s\ntracking id: %s\nstatus:      %s\n",
		t.Name, t.ARN, t.TrackingID, t.Status)
}
