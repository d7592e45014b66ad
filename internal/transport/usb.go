package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/gousb"

	"escp2render/internal/config"
	"escp2render/internal/logging"
)

// USBPrinter writes to a printer attached over USB bulk transfer, using
// google/gousb the way the teacher's USBConnection does.
type USBPrinter struct {
	cfg      config.USBTransportConfig
	ctx      *gousb.Context
	device   *gousb.Device
	intfDone func()
	outEndpt *gousb.OutEndpoint
	log      *logging.TransportLogger
	mutex    sync.RWMutex
	isOpen   bool
	stats    Stats
}

// NewUSBPrinter returns a Printer that has not yet claimed its interface.
func NewUSBPrinter(cfg config.USBTransportConfig, log *logging.TransportLogger) *USBPrinter {
	return &USBPrinter{cfg: cfg, log: log}
}

func (p *USBPrinter) Open(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.isOpen {
		return nil
	}

	vendorID := gousb.ID(p.cfg.VendorID)
	productID := gousb.ID(p.cfg.ProductID)

	usbCtx := gousb.NewContext()
	devices, err := usbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == vendorID && desc.Product == productID
	})
	if err != nil {
		usbCtx.Close()
		return fmt.Errorf("enumerate usb devices: %w", err)
	}
	if len(devices) == 0 {
		usbCtx.Close()
		return fmt.Errorf("usb printer not found (vid=%04x pid=%04x)", p.cfg.VendorID, p.cfg.ProductID)
	}
	for i := 1; i < len(devices); i++ {
		devices[i].Close()
	}
	device := devices[0]

	intf, done, err := device.DefaultInterface()
	if err != nil {
		device.Close()
		usbCtx.Close()
		return fmt.Errorf("claim usb interface: %w", err)
	}

	outEndpt, err := intf.OutEndpoint(1)
	if err != nil {
		done()
		device.Close()
		usbCtx.Close()
		return fmt.Errorf("get usb out endpoint: %w", err)
	}

	p.ctx = usbCtx
	p.device = device
	p.intfDone = done
	p.outEndpt = outEndpt
	p.isOpen = true
	p.log.Opened()
	return nil
}

func (p *USBPrinter) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.isOpen {
		return nil
	}
	if p.intfDone != nil {
		p.intfDone()
	}
	if p.device != nil {
		p.device.Close()
	}
	if p.ctx != nil {
		p.ctx.Close()
	}
	p.outEndpt = nil
	p.device = nil
	p.ctx = nil
	p.isOpen = false
	p.log.Closed(nil)
	return nil
}

func (p *USBPrinter) IsOpen() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.isOpen && p.outEndpt != nil
}

func (p *USBPrinter) Write(ctx context.Context, data []byte) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if !p.isOpen || p.outEndpt == nil {
		return fmt.Errorf("usb printer not open")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	n, err := p.outEndpt.Write(data)
	if err != nil {
		p.stats.ErrorCount++
		p.log.Write(n, err)
		return fmt.Errorf("write to usb printer: %w", err)
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
