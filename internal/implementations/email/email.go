package email

import (
	"context"
	"encoding/json"
	"net/url"

	"spendlog/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			PasswordResetUrl: s.passwordResetBaseUrl.JoinPath(string(token)).String(),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"passwordResetUrl"`
}
