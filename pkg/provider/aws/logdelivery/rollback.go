package logdelivery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type (
	compensation struct {
		name string
		run  func(ctx context.Context) error
	}

	compensations []compensation
)

func (c *compensations) push(name string, run func(ctx context.Context) error) {
	*c = append(*c, compensation{name: name, run: run})
}

// run executes the compensations newest first. Every compensation is attempted
// even if an earlier one fails. A resource that is already gone counts as deleted.
func (c compensations) run(ctx context.Context) error {
	log := logging.GetLogger(ctx)
	var errs error
	for i := len(c) - 1; i >= 0; i-- {
		comp := c[i]
		err := comp.run(ctx)
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			err = nil
		}
		if err != nil {
			log.Warn("Rollback step failed", zap.String("rollback", comp.name), zap.Error(err))
			errs = multierr.Append(errs, errors.Wrap(err, comp.name))
			continue
		}
		log.Info("Rolled back", zap.String("rollback", comp.name))
	}
	return errs
}
