// Package delivery pushes persisted notifications to external channels.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/orris-inc/estatehub/internal/domain/notification"
)

// SNSPublisher is the subset of the SNS client used here
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSDeliverer fans each persisted notification out to an SNS topic. Downstream
// subscribers (email, push) filter on the message attributes.
type SNSDeliverer struct {
	client   SNSPublisher
	topicARN string
}

func NewSNSDeliverer(client SNSPublisher, topicARN string) *SNSDeliverer {
	return &SNSDeliverer{client: client, topicARN: topicARN}
}

// NewSNSDelivererFromConfig loads the default AWS credential chain for region.
func NewSNSDelivererFromConfig(ctx context.Context, region, topicARN string) (*SNSDeliverer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSNSDeliverer(sns.NewFromConfig(cfg), topicARN), nil
}

type snsMessage struct {
	NotificationSID string         `json:"notification_sid"`
	UserID          uint           `json:"user_id"`
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	Link            string         `json:"link,omitempty"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// Deliver publishes n to the topic.
func (d *SNSDeliverer) Deliver(ctx context.Context, n *notification.Notification) error {
	body, err := json.Marshal(snsMessage{
		NotificationSID: n.SID(),
		UserID:          n.UserID(),
		Type:            n.Type().String(),
		Title:           n.Title(),
		Message:         n.Message(),
		Link:            n.Link(),
		Payload:         n.Payload(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode sns message: %w", err)
	}

	_, err = d.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(d.topicARN),
		Subject:  aws.String(n.Title()),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"notification_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.Type().String()),
			},
			"user_id": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(strconv.FormatUint(uint64(n.UserID()), 10)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification %s to sns: %w", n.SID(), err)
	}
	return nil
}
