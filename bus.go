package aw9523

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
}

// AddressableWriteReader performs a combined transaction: write w, then read len(r) bytes
// into r from the same device. Bridges without repeated start may emulate it with a
// write followed by a read.
type AddressableWriteReader interface {
	WriteReadAddr(ctx context.Context, address byte, w, r []byte) error
}

type I2CBus interface {
	AddressableReader
	AddressableWriter
	AddressableWriteReader
}
