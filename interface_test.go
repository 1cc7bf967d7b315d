package aw9523

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewI2C_DefaultAddress(t *testing.T) {
	i := NewI2C(new(MockI2CBus))
	assert.Equal(t, byte(0x58), i.Address())
}

func TestNewI2CCustomAddress(t *testing.T) {
	i, err := NewI2CCustomAddress(new(MockI2CBus), 0x42)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), i.Address())

	i, err = NewI2CCustomAddress(new(MockI2CBus), 0x7F)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), i.Address())

	_, err = NewI2CCustomAddress(new(MockI2CBus), 0x80)
	assert.ErrorIs(t, err, InvalidArgument)
}

func TestI2CInterface_Release(t *testing.T) {
	bus := new(MockI2CBus)
	i := NewI2C(bus)
	released := i.Release()
	assert.Same(t, bus, released)

	err := i.SendCommands(context.Background(), Register(0x02, 0x01))
	assert.ErrorIs(t, err, WriteError)
	assert.ErrorIs(t, err, ErrReleased)
	bus.AssertNotCalled(t, "WriteReadAddr", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestI2CInterface_SendCommands(t *testing.T) {
	tests := []struct {
		name    string
		address byte
		reg     byte
		value   byte
	}{
		{"default address", 0x58, 0x02, 0b00000101},
		{"custom address", 0x42, 0x13, 0xFF},
		{"zero value", 0x5B, 0x11, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			i, err := NewI2CInterface(bus, tt.address)
			require.NoError(t, err)
			bus.On("WriteReadAddr", mock.Anything, tt.address, []byte{tt.reg}, mock.Anything).
				Return([]byte{0xAA}, nil).Once()
			bus.On("WriteToAddr", mock.Anything, tt.address, []byte{tt.reg, tt.value}).
				Return(nil).Once()

			err = i.SendCommands(context.Background(), Register(tt.reg, tt.value))
			assert.NoError(t, err)
			bus.AssertExpectations(t)

			require.Len(t, bus.Calls, 2)
			assert.Equal(t, "WriteReadAddr", bus.Calls[0].Method)
			assert.Len(t, bus.Calls[0].Arguments.Get(3), 1)
			assert.Equal(t, "WriteToAddr", bus.Calls[1].Method)
		})
	}
}

func TestI2CInterface_SendCommands_ErrorCases(t *testing.T) {
	busErr := errors.New("i2c failed")
	tests := []struct {
		name          string
		setupMock     func(*MockI2CBus)
		cmd           Command
		expectedKind  ErrorKind
		expectedError string
		calls         int
	}{
		{
			name: "pre-read fails",
			setupMock: func(bus *MockI2CBus) {
				bus.On("WriteReadAddr", mock.Anything, byte(DefaultAddress), []byte{0x04}, mock.Anything).
					Return(nil, busErr).Once()
			},
			cmd:           Register(0x04, 0x18),
			expectedKind:  WriteError,
			expectedError: "aw9523: write error (pre-read reg 0x04): i2c failed",
			calls:         1,
		},
		{
			name: "write fails",
			setupMock: func(bus *MockI2CBus) {
				bus.On("WriteReadAddr", mock.Anything, byte(DefaultAddress), []byte{0x04}, mock.Anything).
					Return(nil, nil).Once()
				bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x04, 0x18}).
					Return(busErr).Once()
			},
			cmd:           Register(0x04, 0x18),
			expectedKind:  WriteError,
			expectedError: "aw9523: write error (write reg 0x04): i2c failed",
			calls:         2,
		},
		{
			name:          "empty payload",
			setupMock:     func(bus *MockI2CBus) {},
			cmd:           Bytes{},
			expectedKind:  InvalidArgument,
			expectedError: "aw9523: invalid argument (send commands): empty payload",
		},
		{
			name:          "unknown command",
			setupMock:     func(bus *MockI2CBus) {},
			cmd:           otherCommand{},
			expectedKind:  NotSupported,
			expectedError: "unsupported command type aw9523.otherCommand",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			tt.setupMock(bus)
			err := NewI2C(bus).SendCommands(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedKind)
			assert.Equal(t, tt.expectedKind, KindOf(err))
			assert.Contains(t, err.Error(), tt.expectedError)
			if tt.calls > 0 {
				assert.ErrorIs(t, err, busErr)
			}
			assert.Len(t, bus.Calls, tt.calls)
			bus.AssertExpectations(t)
		})
	}
}

func TestI2CInterface_ReadRegister(t *testing.T) {
	bus := new(MockI2CBus)
	bus.On("WriteReadAddr", mock.Anything, byte(DefaultAddress), []byte{RegID}, mock.Anything).
		Return([]byte{0x23}, nil).Once()
	val, err := NewI2C(bus).ReadRegister(context.Background(), RegID)
	require.NoError(t, err)
	assert.Equal(t, byte(0x23), val)
	bus.AssertExpectations(t)

	bus = new(MockI2CBus)
	bus.On("WriteReadAddr", mock.Anything, byte(DefaultAddress), []byte{RegID}, mock.Anything).
		Return(nil, errors.New("nack")).Once()
	_, err = NewI2C(bus).ReadRegister(context.Background(), RegID)
	assert.ErrorIs(t, err, ReadError)
	bus.AssertExpectations(t)
}
