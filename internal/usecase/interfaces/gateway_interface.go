package interfaces

import (
	"context"
	"time"
)

// Email is a plain-text message sent to an applicant.
type Email struct {
	To      string
	Subject string
	Body    string
}

// IMailer abstracts the outgoing email provider (SES).

type IMailer interface {
	Send(ctx context.Context, email Email) error
}

// IUploadPresigner abstracts direct-to-bucket uploads of document files (S3):
// presigned PUT URLs and the check that an object actually arrived.

type IUploadPresigner interface {
	PresignUpload(ctx context.Context, key string, contentType string) (url string, expiresIn time.Duration, err error)
	ObjectExists(ctx context.Context, key string) (bool, error)
}

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// INotifier surfaces human-readable messages to the end user.
// It has no say in how they are presented.

type INotifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}
