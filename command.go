package aw9523

// Command is a payload a Transport can carry to the chip.
// Bytes is the only encoding today.
type Command interface {
	command()
}

// Bytes is a raw sequence sent as-is: [register, value, ...].
type Bytes []byte

func (Bytes) command() {}

// Register builds a single register write.
func Register(reg, value byte) Bytes {
	return Bytes{reg, value}
}
