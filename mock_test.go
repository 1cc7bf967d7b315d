package aw9523

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a mock implementation of I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) WriteReadAddr(ctx context.Context, address byte, w, r []byte) error {
	args := m.Called(ctx, address, w, r)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(r) {
		copy(r, data)
	}
	return args.Error(1)
}

// recordingTransport keeps every command it is given and fails on the registers listed in failOn.
type recordingTransport struct {
	sent   []Bytes
	failOn map[byte]error
}

func (r *recordingTransport) SendCommands(ctx context.Context, cmd Command) error {
	data := cmd.(Bytes)
	r.sent = append(r.sent, append(Bytes(nil), data...))
	if err, ok := r.failOn[data[0]]; ok {
		return err
	}
	return nil
}

type readingTransport struct {
	recordingTransport
	regs    map[byte]byte
	readErr error
}

func (r *readingTransport) ReadRegister(ctx context.Context, reg byte) (byte, error) {
	if r.readErr != nil {
		return 0, r.readErr
	}
	return r.regs[reg], nil
}

type otherCommand struct{}

func (otherCommand) command() {}
