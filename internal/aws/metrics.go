package aws

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
)

const (
	// MetricName is the count published once per handled order request.
	MetricName = "OrderNotification"
	// OutcomeDimension carries the result bucket (sent, invalid_input, ...).
	OutcomeDimension = "Outcome"
)

// MetricsPublisher wraps a CloudWatch client and a namespace.
type MetricsPublisher struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

// NewMetricsPublisher returns a publisher bound to a namespace.
func NewMetricsPublisher(cw CloudWatchAPI, namespace string) *MetricsPublisher {
	return &MetricsPublisher{
		CloudWatch: cw,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// RecordOutcome publishes a single count for outcome.
func (p *MetricsPublisher) RecordOutcome(ctx context.Context, outcome string) error {
	input := &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(p.Namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String(MetricName),
				Dimensions: []cwtypes.Dimension{
					{Name: sdkaws.String(OutcomeDimension), Value: sdkaws.String(outcome)},
				},
				Timestamp: sdkaws.Time(p.nowFunc()),
				Unit:      cwtypes.StandardUnitCount,
				Value:     sdkaws.Float64(1),
			},
		},
	}

	_, err := p.CloudWatch.PutMetricData(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("put metric data (%s): %w", apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
