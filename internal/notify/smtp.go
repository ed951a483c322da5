package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"syscall"

	"github.com/wneessen/go-mail"

	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
)

// Default transport endpoint: the local mail server.
const (
	DefaultSMTPHost = "localhost"
	DefaultSMTPPort = 25
)

// SMTPSender delivers messages to an SMTP server without authentication or TLS,
// opening one connection per message.
type SMTPSender struct {
	Host string
	Port int
}

// NewSMTPSender returns a sender for host:port, falling back to the local
// mail server defaults for empty values.
func NewSMTPSender(host string, port int) *SMTPSender {
	if host == "" {
		host = DefaultSMTPHost
	}
	if port == 0 {
		port = DefaultSMTPPort
	}
	return &SMTPSender{Host: host, Port: port}
}

// Send connects, transmits msg and closes the connection. A refused connection
// is reported as ErrTransportUnavailable, anything else as ErrSendFailed.
//
// Cancelling ctx closes the connection, so a server that never answers cannot
// hold up an interrupt.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSendFailed, err)
	}

	conn := &cancelableConn{}
	stop := context.AfterFunc(ctx, conn.close)
	defer stop()

	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithTLSPolicy(mail.NoTLS),
		mail.WithDialContextFunc(conn.dial),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("%w: %s:%d: %v", kerrors.ErrTransportUnavailable, s.Host, s.Port, err)
		}
		return fmt.Errorf("%w: %v", kerrors.ErrSendFailed, err)
	}
	return nil
}

// cancelableConn remembers the connection go-mail dials so it can be closed
// from outside while a read is blocked.
type cancelableConn struct {
	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

func (c *cancelableConn) dial(ctx context.Context, network, address string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		conn.Close()
		return nil, net.ErrClosed
	}
	c.conn = conn
	return conn, nil
}

func (c *cancelableConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", msg.From, err)
	}
	if err := m.AddToFormat(msg.ToName, msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
