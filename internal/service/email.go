package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendApplicationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	subject := fmt.Sprintf("New application for %s", projectTitle)
	body := fmt.Sprintf("%s has applied to your project %q.\n\nReview the application in your dashboard.", studentName, projectTitle)
	return s.send(ctx, orgEmail, subject, body)
}

func (s *emailService) SendDecisionNotification(ctx context.Context, studentEmail, projectTitle string, accepted bool) error {
	verdict := "rejected"
	if accepted {
		verdict = "accepted"
	}
	subject := fmt.Sprintf("Your application for %s was %s", projectTitle, verdict)
	body := fmt.Sprintf("Your application for %q has been %s.", projectTitle, verdict)
	if accepted {
		body += "\n\nPlease confirm your seat to secure your place."
	}
	return s.send(ctx, studentEmail, subject, body)
}

func (s *emailService) SendConfirmationReceived(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	subject := fmt.Sprintf("Seat confirmed for %s", projectTitle)
	body := fmt.Sprintf("%s has confirmed their seat in %q.", studentName, projectTitle)
	return s.send(ctx, orgEmail, subject, body)
}

func (s *emailService) SendWithdrawalNotice(ctx context.Context, orgEmail, studentName, projectTitle string) error {
	subject := fmt.Sprintf("Application withdrawn from %s", projectTitle)
	body := fmt.Sprintf("%s has withdrawn their application for %q.", studentName, projectTitle)
	return s.send(ctx, orgEmail, subject, body)
}

func (s *emailService) SendSessionReminder(ctx context.Context, studentEmail, projectTitle, date, startTime, endTime string) error {
	subject := fmt.Sprintf("Reminder: %s session on %s", projectTitle, date)
	body := fmt.Sprintf("You have an upcoming session for %q on %s from %s to %s.", projectTitle, date, startTime, endTime)
	return s.send(ctx, studentEmail, subject, body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, orgEmail, orgName string, pendingCount int) error {
	subject := "Applications awaiting your decision"
	body := fmt.Sprintf("Hello %s,\n\nYou have %d application(s) awaiting a decision.", orgName, pendingCount)
	return s.send(ctx, orgEmail, subject, body)
}
