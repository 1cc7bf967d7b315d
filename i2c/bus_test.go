package i2c

import (
	"context"
	"testing"

	"github.com/mklimuk/aw9523"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestGenericBus_WriteReadAddr(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x58, W: []byte{0x10}, R: []byte{0x23}},
		},
	}
	defer pb.Close()
	bus := &GenericBus{bus: pb}
	r := make([]byte, 1)
	err := bus.WriteReadAddr(context.Background(), 0x58, []byte{0x10}, r)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x23}, r)
}

func TestGenericBus_Errors(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	bus := &GenericBus{bus: pb}
	err := bus.WriteToAddr(context.Background(), 0x58, []byte{0x02, 0x05})
	assert.ErrorContains(t, err, "could not write to i2c bus 58")
	err = bus.ReadFromAddr(context.Background(), 0x58, make([]byte, 1))
	assert.ErrorContains(t, err, "could not read from i2c bus 58")
	err = bus.WriteReadAddr(context.Background(), 0x58, []byte{0x02}, make([]byte, 1))
	assert.ErrorContains(t, err, "could not write-read i2c bus 58")
}

// The init sequence must reach the wire as a write-read transaction followed by a register write.
func TestGenericBus_AW9523Init(t *testing.T) {
	var ops []i2ctest.IO
	for _, cmd := range aw9523.InitSequence() {
		ops = append(ops,
			i2ctest.IO{Addr: aw9523.DefaultAddress, W: []byte{cmd[0]}, R: []byte{0x00}},
			i2ctest.IO{Addr: aw9523.DefaultAddress, W: []byte(cmd)},
		)
	}
	pb := &i2ctest.Playback{Ops: ops}
	bus := &GenericBus{bus: pb}

	dev := aw9523.New(aw9523.NewI2C(bus))
	require.NoError(t, dev.Init(context.Background()))
	assert.NoError(t, pb.Close(), "all recorded operations must be consumed")
}

func TestGenericBus_ChipID(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x5A, W: []byte{aw9523.RegID}, R: []byte{0x23}},
		},
	}
	defer pb.Close()
	iface, err := aw9523.NewI2CCustomAddress(&GenericBus{bus: pb}, 0x5A)
	require.NoError(t, err)
	assert.NoError(t, aw9523.New(iface).Verify(context.Background()))
}
