package aw9523

// DefaultAddress is the 7-bit address with AD0 and AD1 tied low.
const DefaultAddress = 0x58

const maxAddress = 0x7F

// Register map
// See: https://cdn-shop.adafruit.com/product-files/4886/AW9523+English+Datasheet.pdf
const (
	RegInputPort0     byte = 0x00
	RegInputPort1     byte = 0x01
	RegOutputPort0    byte = 0x02
	RegOutputPort1    byte = 0x03
	RegConfigPort0    byte = 0x04
	RegConfigPort1    byte = 0x05
	RegIntEnablePort0 byte = 0x06
	RegIntEnablePort1 byte = 0x07
	RegID             byte = 0x10
	RegGlobalControl  byte = 0x11
	RegLEDModePort0   byte = 0x12
	RegLEDModePort1   byte = 0x13
	RegSoftReset      byte = 0x7F
	chipID            byte = 0x23
	softResetValue    byte = 0x00
)

// initSequence brings the expander into the board configuration before any pin use.
var initSequence = []Bytes{
	Register(RegOutputPort0, 0b00000101),
	Register(RegOutputPort1, 0b00000011),
	Register(RegConfigPort0, 0b00011000),
	Register(RegConfigPort1, 0b00001100),
	Register(RegGlobalControl, 0b00010000),
	Register(RegLEDModePort1, 0b11111111),
}

// InitSequence returns a copy of the register writes issued by Init, in order.
func InitSequence() []Bytes {
	seq := make([]Bytes, len(initSequence))
	for i, cmd := range initSequence {
		seq[i] = append(Bytes(nil), cmd...)
	}
	return seq
}
