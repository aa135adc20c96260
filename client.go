// Package ema8314 talks to an EMA-8314(R) 4-channel Ethernet temperature
// I/O module over its UDP request/reply protocol. One Client owns one
// socket to one device; requests are serialized because the module only
// handles a single command at a time.
package ema8314

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// DefaultTimeout is the per-request reply deadline when Config.Timeout
// is unset.
const DefaultTimeout = 5 * time.Second

// Config holds optional Dial settings. The zero value is usable.
type Config struct {
	// LocalAddr binds the client socket to a specific host:port. The
	// module replies to whatever source address it saw, so binding is
	// only needed when routing or firewalling requires a fixed port.
	LocalAddr string
	// Password is the device password, up to 8 ASCII bytes.
	// Defaults to DefaultPassword.
	Password string
	// Timeout is the reply deadline per request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client is a connection to one module.
type Client struct {
	mu       sync.Mutex
	conn     *net.UDPConn
	password string
	timeout  time.Duration
}

// Dial opens a UDP socket to the module at device (host:port).
// No traffic is exchanged until the first request.
func Dial(device string, cfg Config) (*Client, error) {
	raddr, err := net.ResolveUDPAddr("udp", device)
	if err != nil {
		return nil, fmt.Errorf("ema8314: resolve device addr %q: %w", device, err)
	}
	var laddr *net.UDPAddr
	if cfg.LocalAddr != "" {
		laddr, err = net.ResolveUDPAddr("udp", cfg.LocalAddr)
		if err != nil {
			return nil, fmt.Errorf("ema8314: resolve local addr %q: %w", cfg.LocalAddr, err)
		}
	}

	password := cfg.Password
	if password == "" {
		password = DefaultPassword
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, fmt.Errorf("ema8314: dial %s: %w", device, err)
	}
	return &Client{conn: conn, password: password, timeout: timeout}, nil
}

// Close releases the socket. The client is unusable afterwards.
func (c *Client) Close() error {
	return c.conn.Close()
}

// LocalAddr reports the bound source address of the client socket.
func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func checkPassword(pw string) error {
	if len(pw) > passwordLen {
		return fmt.Errorf("ema8314: password longer than %d bytes", passwordLen)
	}
	for i := 0; i < len(pw); i++ {
		if pw[i] < 0x20 || pw[i] > 0x7e {
			return fmt.Errorf("ema8314: password contains non-ASCII byte 0x%02x", pw[i])
		}
	}
	return nil
}

// roundTrip sends one request and waits for the 34-byte reply. Requests
// are serialized: the module answers one command at a time.
func (c *Client) roundTrip(op byte, payload ...byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := frame(c.password, op, payload...)
	if _, err := c.conn.Write(req); err != nil {
		return nil, fmt.Errorf("ema8314: %s: send: %w", opName(op), err)
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, fmt.Errorf("ema8314: %s: set deadline: %w", opName(op), err)
	}
	buf := make([]byte, 2*replyLen)
	n, err := c.conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("ema8314: %s: recv: %w", opName(op), err)
	}
	reply := buf[:n]
	if err := checkReply(op, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// exec runs a command whose reply carries no data beyond the flag.
func (c *Client) exec(op byte, payload ...byte) error {
	_, err := c.roundTrip(op, payload...)
	return err
}
