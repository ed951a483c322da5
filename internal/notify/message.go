package notify

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/secretsanta/internal/assign"
)

// Fixed parts of every notification.
const (
	SenderName = "Secret Santa Picker"
	Subject    = "Your Secret Santa"
	SignOff    = "Wishing you a Merry Christmas and a Happy New Year!!!\nYour Secret Santa Picker"
)

// Message is a plain-text email telling one Secret Santa whom they buy for.
type Message struct {
	FromName string `json:"from_name"`
	From     string `json:"from"`
	ToName   string `json:"to_name"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// Compose builds the message for a. It is addressed to the giver and names
// the recipient of their gift.
func Compose(from string, a assign.Assignment) Message {
	body := fmt.Sprintf("Hi %s,\nYou are Secret Santa of: %s\n\n%s", a.Giver.Name, a.Recipient.Name, SignOff)
	return Message{
		FromName: SenderName,
		From:     from,
		ToName:   a.Giver.Name,
		To:       a.Giver.Email,
		Subject:  Subject,
		Body:     body,
	}
}

// String renders headers and body as they would appear to the reader.
// It never fails, so a dry run always has something to show.
func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", m.FromName, m.From)
	fmt.Fprintf(&b, "To: %s <%s>\n", m.ToName, m.To)
	fmt.Fprintf(&b, "Subject: %s\n", m.Subject)
	b.WriteString("\n")
	b.WriteString(m.Body)
	b.WriteString("\n")
	return b.String()
}
