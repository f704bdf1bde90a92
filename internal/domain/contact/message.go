package contact

import (
	"errors"
	"strings"
	"unicode/utf8"

	"hotel-storefront/internal/domain/user"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrSubjectRequired = errors.New("subject is required")
	ErrBodyRequired    = errors.New("message body is required")
	ErrBodyTooLong     = errors.New("message body is too long")
)

const MaxBodyLength = 5000

// Message is a visitor's contact form submission.
type Message struct {
	name    string
	email   user.Email
	subject string
	body    string
}

func NewMessage(name, email, subject, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrBodyRequired
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return nil, ErrBodyTooLong
	}

	return &Message{name: name, email: addr, subject: subject, body: body}, nil
}

func (m *Message) Name() string      { return m.name }
func (m *Message) Email() user.Email { return m.email }
func (m *Message) Subject() string   { return m.subject }
func (m *Message) Body() string      { return m.body }
