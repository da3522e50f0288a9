// Package mail sends applicant emails through Amazon SES.
package mail

import (
	"context"
	"errors"
	"log"

	"portail_immigration/internal/config"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrSenderNotConfigured = errors.New("mail sender not configured")

const charsetUTF8 = "UTF-8"

// SESAPI is the subset of *sesv2.Client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESMailer struct {
	client SESAPI
	from   string
}

var _ interfaces.IMailer = (*SESMailer)(nil)

// New returns the mailer selected by the environment: a LogMailer when MAIL_MOCK is set,
// otherwise an SES mailer that requires MAIL_FROM.
func New(cfg aws.Config, env config.Env) (interfaces.IMailer, error) {
	if env.MailMock {
		return LogMailer{}, nil
	}
	return NewSESMailer(sesv2.NewFromConfig(cfg), env.MailFrom)
}

func NewSESMailer(client SESAPI, from string) (*SESMailer, error) {
	if from == "" {
		return nil, ErrSenderNotConfigured
	}
	return &SESMailer{client: client, from: from}, nil
}

func (m *SESMailer) Send(ctx context.Context, email interfaces.Email) error {
	out, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination:      &types.Destination{ToAddresses: []string{email.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(email.Body), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[mail][ses] send failed to=%s err=%v", email.To, err)
		return err
	}
	log.Printf("[mail][ses] sent to=%s message_id=%s", email.To, aws.ToString(out.MessageId))
	return nil
}

// LogMailer only logs outgoing emails. Used for local runs.
type LogMailer struct{}

var _ interfaces.IMailer = LogMailer{}

func (LogMailer) Send(_ context.Context, email interfaces.Email) error {
	log.Printf("[mail][mock] to=%s subject=%q body=%q", email.To, email.Subject, email.Body)
	return nil
}
