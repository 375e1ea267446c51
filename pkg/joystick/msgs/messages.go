// Package msgs defines the wire messages emitted by the joystick
// subsystem.
package msgs

import (
	"github.com/golang/protobuf/proto"
)

// DeviceChange reports a slot presence transition.
type DeviceChange struct {
	Slot      uint32 `protobuf:"varint,1,opt,name=slot,proto3" json:"slot,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Connected bool   `protobuf:"varint,3,opt,name=connected,proto3" json:"connected,omitempty"`
}

// TypeID returns the message type id.
func (m *DeviceChange) TypeID() uint32 { return DeviceChangeTypeID }

// ProtoMessage implements proto.Message.
func (m *DeviceChange) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DeviceChange) Reset() { *m = DeviceChange{} }

// String implements proto.Message.
func (m *DeviceChange) String() string { return proto.CompactTextString(m) }

// DeviceState is a snapshot of one present device.
type DeviceState struct {
	Slot    uint32    `protobuf:"varint,1,opt,name=slot,proto3" json:"slot,omitempty"`
	Name    string    `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Axes    []float32 `protobuf:"fixed32,3,rep,packed,name=axes,proto3" json:"axes,omitempty"`
	Buttons []uint32  `protobuf:"varint,4,rep,packed,name=buttons,proto3" json:"buttons,omitempty"`
}

// TypeID returns the message type id.
func (m *DeviceState) TypeID() uint32 { return DeviceStateTypeID }

// ProtoMessage implements proto.Message.
func (m *DeviceState) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DeviceState) Reset() { *m = DeviceState{} }

// String implements proto.Message.
func (m *DeviceState) String() string { return proto.CompactTextString(m) }

// TypeID groups
const (
	GroupJoystick uint32 = 0x00030000
)

// TypeIDs
const (
	DeviceChangeTypeID uint32 = GroupJoystick | 0x0000
	DeviceStateTypeID  uint32 = GroupJoystick | 0x0001
)
