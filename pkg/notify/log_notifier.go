package notify

import "log"

// logNotifier writes deliveries to the process log. Default implementation
// when no real email/SMS gateway is configured.
type logNotifier struct {
	emailFrom string
	smsSender string
}

func NewLog(emailFrom, smsSender string) Notifier {
	return &logNotifier{emailFrom: emailFrom, smsSender: smsSender}
}

func (n *logNotifier) Email(to []string, subject, body string) error {
	log.Printf("[notify] email from=%s to=%v subject=%q (%d bytes)", n.emailFrom, to, subject, len(body))
	return nil
}

func (n *logNotifier) SMS(to []string, body string) error {
	log.Printf("[notify] sms sender=%s to=%v (%d bytes)", n.smsSender, to, len(body))
	return nil
}

func (n *logNotifier) Push(userIDs []string, title, body string) error {
	log.Printf("[notify] push to=%v title=%q", userIDs, title)
	return nil
}
