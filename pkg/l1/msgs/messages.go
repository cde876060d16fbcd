package msgs

import (
	"errors"

	fx "github.com/robotalks/skibot.go/pkg/framework"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct{}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() interface{} { return m }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	Message string `json:"message"`
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{Message: message}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() interface{} { return m }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// Thrust is the event stream driving the robot: a linear force
// along the heading axis and a yaw torque. Out-of-range values
// are clipped by the controller; unknown fields are ignored.
type Thrust struct {
	ForceX  float64 `json:"force_x"`
	TorqueZ float64 `json:"torque_z"`
}

// NewMessage implements Message.
func (m *Thrust) NewMessage() fx.Message { return &Thrust{} }

// TypeID implements SerializableMessage.
func (m *Thrust) TypeID() uint32 { return ThrustTypeID }

// Serializable implements SerializableMessage.
func (m *Thrust) Serializable() interface{} { return m }

// TargetPose is the advisory target pose overlay, drawn by the
// renderer as an arrow. No effect on the dynamics.
type TargetPose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// NewMessage implements Message.
func (m *TargetPose) NewMessage() fx.Message { return &TargetPose{} }

// TypeID implements SerializableMessage.
func (m *TargetPose) TypeID() uint32 { return TargetPoseTypeID }

// Serializable implements SerializableMessage.
func (m *TargetPose) Serializable() interface{} { return m }

// TargetPoint is the advisory target point overlay, drawn by the
// renderer as a dot. No effect on the dynamics.
type TargetPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewMessage implements Message.
func (m *TargetPoint) NewMessage() fx.Message { return &TargetPoint{} }

// TypeID implements SerializableMessage.
func (m *TargetPoint) TypeID() uint32 { return TargetPointTypeID }

// Serializable implements SerializableMessage.
func (m *TargetPoint) Serializable() interface{} { return m }

// ClearTargets drops both overlay targets.
type ClearTargets struct{}

// NewMessage implements Message.
func (m *ClearTargets) NewMessage() fx.Message { return &ClearTargets{} }

// TypeID implements SerializableMessage.
func (m *ClearTargets) TypeID() uint32 { return ClearTargetsTypeID }

// Serializable implements SerializableMessage.
func (m *ClearTargets) Serializable() interface{} { return m }

// Teleport command: move the robot to the given pose and stop.
// Replied with CommandOK, or CommandErr for non-finite input or a
// pose outside the arena.
type Teleport struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// NewMessage implements Message.
func (m *Teleport) NewMessage() fx.Message { return &Teleport{} }

// TypeID implements SerializableMessage.
func (m *Teleport) TypeID() uint32 { return TeleportTypeID }

// Serializable implements SerializableMessage.
func (m *Teleport) Serializable() interface{} { return m }

// Pose is the event published at the configured rate with the
// robot's current pose and body-frame velocities.
type Pose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Theta   float64 `json:"theta"`
	Linear  float64 `json:"linear_velocity"`
	Angular float64 `json:"angular_velocity"`
}

// NewMessage implements Message.
func (m *Pose) NewMessage() fx.Message { return &Pose{} }

// TypeID implements SerializableMessage.
func (m *Pose) TypeID() uint32 { return PoseTypeID }

// Serializable implements SerializableMessage.
func (m *Pose) Serializable() interface{} { return m }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupSkibot  uint32 = 0x00030000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID   uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	TeleportTypeID     uint32 = GroupSkibot | 0x0000
	ThrustTypeID       uint32 = TypeIDKindEvent | GroupSkibot | 0x0001
	TargetPoseTypeID   uint32 = TypeIDKindEvent | GroupSkibot | 0x0002
	TargetPointTypeID  uint32 = TypeIDKindEvent | GroupSkibot | 0x0003
	ClearTargetsTypeID uint32 = TypeIDKindEvent | GroupSkibot | 0x0004
	PoseTypeID         uint32 = TypeIDKindEvent | GroupSkibot | 0x0005
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
