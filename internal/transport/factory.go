package transport

import (
	"fmt"

	"escp2render/internal/config"
	"escp2render/internal/logging"
)

// Kind names a supported transport, selected by configuration
// (transport.default) rather than device discovery.
type Kind string

const (
	KindSerial Kind = "serial"
	KindTCP    Kind = "tcp"
	KindUSB    Kind = "usb"
)

// New builds a Printer for the requested kind from cfg, mirroring the
// teacher's CreateProtocol dispatch.
func New(kind Kind, cfg config.TransportConfig, baseLog *logging.TransportLogger) (Printer, error) {
	switch kind {
	case KindSerial:
		if cfg.Serial.Port == "" {
			return nil, fmt.Errorf("transport.serial.port is required")
		}
		return NewSerialPrinter(cfg.Serial, baseLog), nil
	case KindTCP:
		if cfg.TCP.Address == "" {
			return nil, fmt.Errorf("transport.tcp.address is required")
		}
		return NewTCPPrinter(cfg.TCP, baseLog), nil
	case KindUSB:
		if cfg.USB.VendorID == 0 || cfg.USB.ProductID == 0 {
			return nil, fmt.Errorf("transport.usb.vendor_id and product_id are required")
		}
		return NewUSBPrinter(cfg.USB, baseLog), nil
	default:
		return nil, fmt.Errorf("unsupported transport kind: %q", kind)
	}
}

// ValidBaudRate reports whether rate is one of the standard serial rates
// an ESC/P2 printer's serial interface is likely to support.
func ValidBaudRate(rate int) bool {
	for _, r := range []int{1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200} {
		if rate == r {
			return true
		}
	}
	return false
}
