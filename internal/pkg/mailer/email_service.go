package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTesterInvite(toEmail, testerName, botName, shareToken string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	frontendURL string
}

func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, email, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: email,
		senderName:  senderName,
		frontendURL: frontendURL,
	}
}

// SendTesterInvite mails a tester their share link. The share token is
// the whole credential, so the mail goes to the tester address only.
func (s *emailService) SendTesterInvite(toEmail, testerName, botName, shareToken string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("You're invited to test %s", botName))

	shareLink := fmt.Sprintf("%s/chat/%s", s.frontendURL, shareToken)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>You've been invited to test the <strong>%s</strong> assistant.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Testing</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>Anyone with this link can chat as you, so please keep it to yourself.</p>
		</div>
	`, testerName, botName, shareLink, shareLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invite to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Invite sent to %s\n", toEmail)
	return nil
}
