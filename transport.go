package aw9523

import "context"

// Transport carries chip commands to the device. It is the only seam between the
// register logic and a concrete bus; failures are reported as *Error and never retried.
type Transport interface {
	SendCommands(ctx context.Context, cmd Command) error
}

// RegisterReader is implemented by transports able to read a single register back.
type RegisterReader interface {
	ReadRegister(ctx context.Context, reg byte) (byte, error)
}
