package transport

import (
	"context"
	"fmt"
	"sync"

	"go.bug.st/serial"

	"escp2render/internal/config"
	"escp2render/internal/logging"
)

// SerialPrinter writes to a printer attached over a serial (or
// USB-serial) port, using go.bug.st/serial — the same library the
// teacher's SerialConnection wraps.
type SerialPrinter struct {
	cfg    config.SerialTransportConfig
	port   serial.Port
	log    *logging.TransportLogger
	mutex  sync.RWMutex
	isOpen bool
	stats  Stats
}

// NewSerialPrinter returns a Printer that has not yet opened its port.
func NewSerialPrinter(cfg config.SerialTransportConfig, log *logging.TransportLogger) *SerialPrinter {
	return &SerialPrinter{cfg: cfg, log: log}
}

func (p *SerialPrinter) Open(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.isOpen {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: p.cfg.BaudRate,
		DataBits: p.cfg.DataBits,
		StopBits: serial.StopBits(p.cfg.StopBits),
	}
	switch p.cfg.Parity {
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	default:
		mode.Parity = serial.NoParity
	}

	port, err := serial.Open(p.cfg.Port, mode)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", p.cfg.Port, err)
	}
	if err := port.SetReadTimeout(p.cfg.Timeout); err != nil {
		port.Close()
		return fmt.Errorf("set serial timeout: %w", err)
	}

	p.port = port
	p.isOpen = true
	p.log.Opened()
	return nil
}

func (p *SerialPrinter) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.isOpen || p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	p.isOpen = false
	p.log.Closed(err)
	return err
}

func (p *SerialPrinter) IsOpen() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.isOpen && p.port != nil
}

func (p *SerialPrinter) Write(ctx context.Context, data []byte) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if !p.isOpen || p.port == nil {
		return fmt.Errorf("serial port not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	n, err := p.port.Write(data)
	if err != nil {
		p.stats.ErrorCount++
		p.log.Write(n, err)
		return fmt.Errorf("write to serial port: %w", err)
	}
	if n != len(data) {
		err := fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(data))
		p.log.Write(n, err)
		return err
	}

	p.stats.BytesWritten += int64(n)
	p.stats.OperationCount++
	p.log.Write(n, nil)
	return nil
}
