// Package lambdaenv writes single environment variables on Lambda
// functions.
//
// The demos pass the tracking ID of a freshly-created event tracker to the
// event-ingest function this way. Updating one variable requires a
// read-merge-write of the function configuration, since the update call
// replaces the whole environment.
package lambdaenv

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// API is the subset of the Lambda client used here. Satisfied by
// *lambda.Client.
type API interface {
	GetFunctionConfiguration(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error)
	UpdateFunctionConfiguration(ctx context.Context, params *lambda.UpdateFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionConfigurationOutput, error)
}

// Setter updates environment variables on Lambda functions.
type Setter struct {
	client API
}

// New creates a Setter.
func New(client API) *Setter {
	return &Setter{client: client}
}

// Set writes key=value into the function's environment, preserving all
// other variables.
//
// Read and write are not atomic; concurrent configuration updates to the
// same function can race. The demos only ever update one function from one
// place.
func (s *Setter) Set(ctx context.Context, functionName, key, value string) error {
	cfg, err := s.client.GetFunctionConfiguration(ctx, &lambda.GetFunctionConfigurationInput{
		FunctionName: aws.String(functionName),
	})
	if err != nil {
		return err
	}

	vars := make(map[string]string)
	if cfg.Environment != nil {
		for k, v := range cfg.Environment.Variables {
			vars[k] = v
		}
	}
	vars[key] = value

	_, err = s.client.UpdateFunctionConfiguration(ctx, &lambda.UpdateFunctionConfigurationInput{
		FunctionName: aws.String(functionName),
		Environment: &types.Environment{
			Variables: vars,
		},
	})
	return err
}
