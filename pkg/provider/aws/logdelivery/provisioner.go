// Package logdelivery wires a Bedrock knowledge base's application logs into a
// CloudWatch Logs log group using vended-log deliveries.
//
// Provisioning is four ordered calls: create the log group, register a
// delivery source for the knowledge base, register a delivery destination for
// the log group, and bind the two with a delivery. The first failure stops the
// sequence.
package logdelivery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StepCreateLogGroup         = "create-log-group"
	StepPutDeliverySource      = "put-delivery-source"
	StepPutDeliveryDestination = "put-delivery-destination"
	StepCreateDelivery         = "create-delivery"
)

type (
	Options struct {
		Naming Naming
		// Rollback deletes what the failed run created, newest first. Off by
		// default: a failed run leaves its partial resources in place.
		Rollback bool
	}

	Provisioner struct {
		api      LogsAPI
		opts     Options
		inflight singleflight.Group
	}

	// Result describes the delivery pipeline after a successful run.
	Result struct {
		LogGroupName            string
		LogGroupCreated         bool
		DeliverySourceName      string
		DeliveryDestinationName string
		DeliveryDestinationARN  string
		DeliveryID              string
		// DeliveryReused is set when the delivery already existed.
		DeliveryReused bool
	}

	step struct {
		name string
		run  func(ctx context.Context) error
	}

	outcome struct {
		spec   Spec
		result Result
	}

	// run holds the state of a single provisioning attempt.
	run struct {
		api   LogsAPI
		spec  Spec
		names names
		// owned makes the run check which objects already exist so that
		// rollback only removes what this run created.
		owned  bool
		result Result
		undo   compensations
	}
)

func NewProvisioner(api LogsAPI, opts Options) *Provisioner {
	return &Provisioner{api: api, opts: opts}
}

// Provision sets up log delivery for the knowledge base in spec.
//
// Concurrent calls for the same knowledge base share a single run and its
// outcome. The shared run does not inherit cancellation from any caller: a
// caller whose ctx is done returns ctx.Err() while the run continues for the
// others. A caller that joins a run started with a different spec gets
// ErrSpecInFlight instead of that run's result.
func (p *Provisioner) Provision(ctx context.Context, spec Spec) (Result, error) {
	spec, err := spec.Resolve()
	if err != nil {
		return Result{}, err
	}
	ch := p.inflight.DoChan(spec.KnowledgeBaseID, func() (any, error) {
		res, err := p.provision(context.WithoutCancel(ctx), spec)
		return outcome{spec: spec, result: res}, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res = <-ch:
	}

	out, _ := res.Val.(outcome)
	if res.Shared {
		logging.GetLogger(ctx).Debug("joined in-flight log delivery setup",
			logging.KnowledgeBaseField(spec.KnowledgeBaseID, spec.KnowledgeBaseARN))
		if out.spec != spec {
			return Result{}, errors.Wrapf(ErrSpecInFlight, "knowledge base %s", spec.KnowledgeBaseID)
		}
	}
	if res.Err != nil {
		return Result{}, res.Err
	}
	return out.result, nil
}

func (p *Provisioner) provision(ctx context.Context, spec Spec) (Result, error) {
	log := logging.GetLogger(ctx).With(logging.KnowledgeBaseField(spec.KnowledgeBaseID, spec.KnowledgeBaseARN))

	r := &run{api: p.api, spec: spec, names: p.opts.Naming.names(spec.KnowledgeBaseID), owned: p.opts.Rollback}
	r.result.LogGroupName = r.names.logGroup
	r.result.DeliverySourceName = r.names.source
	r.result.DeliveryDestinationName = r.names.destination

	steps := []step{
		{name: StepCreateLogGroup, run: r.createLogGroup},
		{name: StepPutDeliverySource, run: r.putDeliverySource},
		{name: StepPutDeliveryDestination, run: r.putDeliveryDestination},
		{name: StepCreateDelivery, run: r.createDelivery},
	}

	log.Info("Creating log delivery", zap.Stringer("naming", p.opts.Naming))
	for i, s := range steps {
		stepLog := log.With(logging.StepField(i+1, s.name))
		stepLog.Debug("Starting log delivery step")

		if err := s.run(ctx); err != nil {
			stepLog.Error("Log delivery step failed", zap.Error(err))
			setupErr := &SetupError{Step: s.name, Cause: err}
			if p.opts.Rollback {
				setupErr.RollbackErr = r.undo.run(logging.WithLogger(ctx, stepLog))
			}
			return Result{}, setupErr
		}
	}
	log.Info("Log delivery created",
		zap.String("log_group", r.result.LogGroupName),
		zap.String("delivery_id", r.result.DeliveryID),
		zap.Bool("delivery_reused", r.result.DeliveryReused),
	)
	return r.result, nil
}

func (r *run) createLogGroup(ctx context.Context) error {
	name := r.names.logGroup
	_, err := r.api.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	var exists *types.ResourceAlreadyExistsException
	switch {
	case errors.As(err, &exists):
		logging.GetLogger(ctx).Debug("Log group already exists", zap.String("log_group", name))
		return nil
	case err != nil:
		return errors.Wrapf(err, "could not create log group %s", name)
	}

	r.result.LogGroupCreated = true
	r.undo.push("delete-log-group", func(ctx context.Context) error {
		_, err := r.api.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{LogGroupName: aws.String(name)})
		return err
	})
	return nil
}

func (r *run) putDeliverySource(ctx context.Context) error {
	name := r.names.source
	created, err := r.creates(ctx, "delivery source", name, func(ctx context.Context) error {
		_, err := r.api.GetDeliverySource(ctx, &cloudwatchlogs.GetDeliverySourceInput{Name: aws.String(name)})
		return err
	})
	if err != nil {
		return err
	}
	_, err = r.api.PutDeliverySource(ctx, &cloudwatchlogs.PutDeliverySourceInput{
		Name:        aws.String(name),
		ResourceArn: aws.String(r.spec.KnowledgeBaseARN),
		LogType:     aws.String(LogType),
	})
	if err != nil {
		return errors.Wrapf(err, "could not put delivery source %s", name)
	}
	if !created {
		return nil
	}
	r.undo.push("delete-delivery-source", func(ctx context.Context) error {
		_, err := r.api.DeleteDeliverySource(ctx, &cloudwatchlogs.DeleteDeliverySourceInput{Name: aws.String(name)})
		return err
	})
	return nil
}

func (r *run) putDeliveryDestination(ctx context.Context) error {
	name := r.names.destination
	created, err := r.creates(ctx, "delivery destination", name, func(ctx context.Context) error {
		_, err := r.api.GetDeliveryDestination(ctx, &cloudwatchlogs.GetDeliveryDestinationInput{Name: aws.String(name)})
		return err
	})
	if err != nil {
		return err
	}
	out, err := r.api.PutDeliveryDestination(ctx, &cloudwatchlogs.PutDeliveryDestinationInput{
		Name:         aws.String(name),
		OutputFormat: types.OutputFormatJson,
		DeliveryDestinationConfiguration: &types.DeliveryDestinationConfiguration{
			DestinationResourceArn: aws.String(r.spec.LogGroupARN()),
		},
	})
	if err != nil {
		return errors.Wrapf(err, "could not put delivery destination %s", name)
	}
	if created {
		r.undo.push("delete-delivery-destination", func(ctx context.Context) error {
			_, err := r.api.DeleteDeliveryDestination(ctx, &cloudwatchlogs.DeleteDeliveryDestinationInput{Name: aws.String(name)})
			return err
		})
	}

	if out == nil || out.DeliveryDestination == nil || aws.ToString(out.DeliveryDestination.Arn) == "" {
		return ErrMissingDestinationARN
	}
	r.result.DeliveryDestinationARN = aws.ToString(out.DeliveryDestination.Arn)
	return nil
}

// creates reports whether the upsert that follows will create the named object
// rather than update one left by an earlier run. Without rollback ownership is
// irrelevant and no lookup is made.
func (r *run) creates(ctx context.Context, kind, name string, get func(ctx context.Context) error) (bool, error) {
	if !r.owned {
		return true, nil
	}
	err := get(ctx)
	var notFound *types.ResourceNotFoundException
	switch {
	case errors.As(err, &notFound):
		return true, nil
	case err != nil:
		return false, errors.Wrapf(err, "could not get %s %s", kind, name)
	}
	logging.GetLogger(ctx).Debug("Reusing existing delivery object, rollback will keep it",
		zap.String("kind", kind), zap.String("name", name))
	return false, nil
}

func (r *run) createDelivery(ctx context.Context) error {
	out, err := r.api.CreateDelivery(ctx, &cloudwatchlogs.CreateDeliveryInput{
		DeliverySourceName:     aws.String(r.names.source),
		DeliveryDestinationArn: aws.String(r.result.DeliveryDestinationARN),
	})
	var conflict *types.ConflictException
	switch {
	case errors.As(err, &conflict):
		id, err := r.findDelivery(ctx)
		if err != nil {
			return err
		}
		r.result.DeliveryID = id
		r.result.DeliveryReused = true
		return nil

	case err != nil:
		return errors.Wrapf(err, "could not create delivery for source %s", r.names.source)
	}

	if out != nil && out.Delivery != nil {
		r.result.DeliveryID = aws.ToString(out.Delivery.Id)
	}
	return nil
}

// findDelivery looks up the delivery that already binds this run's source to
// its destination.
func (r *run) findDelivery(ctx context.Context) (string, error) {
	input := &cloudwatchlogs.DescribeDeliveriesInput{}
	for {
		out, err := r.api.DescribeDeliveries(ctx, input)
		if err != nil {
			return "", errors.Wrap(err, "could not describe deliveries")
		}
		for _, d := range out.Deliveries {
			if aws.ToString(d.DeliverySourceName) == r.names.source &&
				aws.ToString(d.DeliveryDestinationArn) == r.result.DeliveryDestinationARN {
				return aws.ToString(d.Id), nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return "", ErrDeliveryNotFound
		}
		input = &cloudwatchlogs.DescribeDeliveriesInput{NextToken: out.NextToken}
	}
}
