package aw9523

import (
	"context"
	"fmt"
)

var _ Transport = &I2CInterface{}
var _ RegisterReader = &I2CInterface{}

// I2CInterface carries commands to an AW9523 over an I2C bus at a fixed address.
type I2CInterface struct {
	bus     I2CBus
	address byte
}

// NewI2C binds the bus at the chip's default address.
func NewI2C(bus I2CBus) *I2CInterface {
	return &I2CInterface{bus: bus, address: DefaultAddress}
}

// NewI2CCustomAddress binds the bus at a strapped address other than the default.
func NewI2CCustomAddress(bus I2CBus, address byte) (*I2CInterface, error) {
	return NewI2CInterface(bus, address)
}

// NewI2CInterface returns an InvalidArgument error for addresses outside the 7-bit range.
func NewI2CInterface(bus I2CBus, address byte) (*I2CInterface, error) {
	if address > maxAddress {
		return nil, newError(InvalidArgument, "new interface", fmt.Errorf("address %#x is not a 7-bit i2c address", address))
	}
	return &I2CInterface{bus: bus, address: address}, nil
}

func (i *I2CInterface) Address() byte {
	return i.address
}

// Release hands the bus back to the caller. The interface rejects any command afterwards.
func (i *I2CInterface) Release() I2CBus {
	bus := i.bus
	i.bus = nil
	return bus
}

// SendCommands writes a Bytes payload. The chip only latches a register write that is
// preceded by a one byte read of the same register, so every write is sent as a
// write-read of payload[0] followed by a plain write of the whole payload.
func (i *I2CInterface) SendCommands(ctx context.Context, cmd Command) error {
	data, ok := cmd.(Bytes)
	if !ok {
		return newError(NotSupported, "send commands", fmt.Errorf("unsupported command type %T", cmd))
	}
	if len(data) == 0 {
		return newError(InvalidArgument, "send commands", fmt.Errorf("empty payload"))
	}
	if i.bus == nil {
		return newError(WriteError, "send commands", ErrReleased)
	}
	scratch := make([]byte, 1)
	err := i.bus.WriteReadAddr(ctx, i.address, []byte{data[0]}, scratch)
	if err != nil {
		return newError(WriteError, fmt.Sprintf("pre-read reg %#02x", data[0]), err)
	}
	err = i.bus.WriteToAddr(ctx, i.address, data)
	if err != nil {
		return newError(WriteError, fmt.Sprintf("write reg %#02x", data[0]), err)
	}
	return nil
}

func (i *I2CInterface) ReadRegister(ctx context.Context, reg byte) (byte, error) {
	if i.bus == nil {
		return 0, newError(ReadError, "read register", ErrReleased)
	}
	buf := make([]byte, 1)
	err := i.bus.WriteReadAddr(ctx, i.address, []byte{reg}, buf)
	if err != nil {
		return 0, newError(ReadError, fmt.Sprintf("read reg %#02x", reg), err)
	}
	return buf[0], nil
}
