package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
	sesErr    error
)

func sesInit() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		sesErr = fmt.Errorf("AWS config load failed: %w", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	sesOnce.Do(sesInit)
	if sesErr != nil {
		return sesErr
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendPlanAssignedEmail tells a client their nutritionist created a
// plan for them.
func SendPlanAssignedEmail(to, planName, planDate, nutritionistName string) error {
	subject := "New nutrition plan assigned"
	body := fmt.Sprintf("%s created the plan %q for you on %s.\n\nOpen the app to review your meals.",
		nutritionistName, planName, planDate)
	return sendEmail(to, subject, body)
}
