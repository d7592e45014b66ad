package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"escp2render/internal/config"
	"escp2render/internal/logging"
)

// TCPPrinter writes to a network-attached printer's raw data socket
// (most ESC/P2 printers with a JetDirect-style interface listen on 9100),
// following the teacher's TCPConnection shape.
type TCPPrinter struct {
	cfg    config.TCPTransportConfig
	conn   net.Conn
	log    *logging.TransportLogger
	mutex  sync.RWMutex
	isOpen bool
	stats  Stats
}

// NewTCPPrinter returns a Printer that has not yet dialed its address.
func NewTCPPrinter(cfg config.TCPTransportConfig, log *logging.TransportLogger) *TCPPrinter {
	return &TCPPrinter{cfg: cfg, log: log}
}

func (p *TCPPrinter) Open(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.isOpen {
		return nil
	}

	dialer := net.Dialer{Timeout: p.cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.cfg.Address)
	if err != nil {
		return fmt.Errorf("dial printer at %s: %w", p.cfg.Address, err)
	}

	p.conn = conn
	p.isOpen = true
	p.log.Opened()
	return nil
}

func (p *TCPPrinter) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.isOpen || p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	p.isOpen = false
	p.log.Closed(err)
	return err
}

func (p *TCPPrinter) IsOpen() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.isOpen && p.conn != nil
}

func (p *TCPPrinter) Write(ctx context.Context, data []byte) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if !p.isOpen || p.conn == nil {
		return fmt.Errorf("tcp connection not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if deadline, ok := ctx.Deadline(); ok {
		p.conn.SetWriteDeadline(deadline)
	} else if p.cfg.WriteTimeout > 0 {
		p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
	}

	n, err := p.conn.Write(data)
	if err != nil {
		p.stats.ErrorCount++
		p.log.Write(n, err)
		return fmt.Errorf("write to tcp printer: %w", err)
	}

	p.stats.BytesWritten += int64(n)
	p.stats.OperationCount++
	p.log.Write(n, nil)
	return nil
}
