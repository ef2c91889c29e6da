package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/pkg/rocketmq"
)

const (
	defaultMailTopic = "author_haven_mail"

	MailVerifyEmail   = "verify_email"
	MailResetPassword = "reset_password"
)

// MailJob is the message consumed by the mail sender.
type MailJob struct {
	Type     string `json:"type"`
	From     string `json:"from"`
	To       string `json:"to"`
	Username string `json:"username"`
	Link     string `json:"link"`
}

var _ IMailService = (*MailService)(nil)

type IMailService interface {
	SendVerification(ctx context.Context, username, email, token string) error
	SendPasswordReset(ctx context.Context, username, email, token string) error
}

type MailService struct {
	Config    *config.Config
	Publisher rocketmq.Publisher
}

func (s *MailService) SendVerification(ctx context.Context, username, email, token string) error {
	link := fmt.Sprintf("%s/confirmation?emailToken=%s", s.Config.App.BaseURL, url.QueryEscape(token))
	return s.publish(ctx, MailJob{Type: MailVerifyEmail, To: email, Username: username, Link: link})
}

func (s *MailService) SendPasswordReset(ctx context.Context, username, email, token string) error {
	site := s.Config.App.FrontendURL
	if site == "" {
		site = s.Config.App.BaseURL
	}
	link := fmt.Sprintf("%s/reset-password?passwordtoken=%s", strings.TrimRight(site, "/"), url.QueryEscape(token))
	return s.publish(ctx, MailJob{Type: MailResetPassword, To: email, Username: username, Link: link})
}

func (s *MailService) publish(ctx context.Context, job MailJob) error {
	job.From = s.Config.Mail.From
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}

	topic := s.Config.RocketMQ.MailTopic
	if topic == "" {
		topic = defaultMailTopic
	}
	if err := s.Publisher.Publish(ctx, topic, job.To, body); err != nil {
		return fmt.Errorf("publish %s mail: %w", job.Type, err)
	}
	return nil
}
