package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/skibot.go/pkg/framework"
)

func TestTypedThrustIgnoresExtraFields(t *testing.T) {
	// a full Wrench-style payload: only force_x and torque_z matter
	typed := &Typed{
		TypeID: ThrustTypeID,
		Message: []byte(`{"force_x": 2.5, "force_y": 9, "force_z": -1,
			"torque_x": 3, "torque_y": 4, "torque_z": -0.1}`),
	}
	msg, err := typed.Decode()
	require.NoError(t, err)
	require.Equal(t, &Thrust{ForceX: 2.5, TorqueZ: -0.1}, msg)
}

func TestTypedUnknownType(t *testing.T) {
	typed := &Typed{TypeID: GroupCustom | 0x0001}
	_, err := typed.Decode()
	require.Error(t, err)
	var unknown *ErrUnknownType
	require.ErrorAs(t, err, &unknown)
}

func TestTypedKinds(t *testing.T) {
	teleport, err := TypedFrom(&Teleport{X: 1, Y: 2, Theta: 0.5})
	require.NoError(t, err)
	require.True(t, teleport.IsCommand())
	require.False(t, teleport.IsEvent())
	require.False(t, teleport.IsReply())

	pose, err := TypedFrom(&Pose{X: 1})
	require.NoError(t, err)
	require.True(t, pose.IsEvent())

	ok, err := TypedFrom(NewCommandOK())
	require.NoError(t, err)
	require.True(t, ok.IsCommand())
	require.True(t, ok.IsReply())
}

func TestTypedEnvelopeRoundTrip(t *testing.T) {
	typed, err := TypedFrom(&TargetPose{X: 3, Y: 4, Theta: 1.5})
	require.NoError(t, err)
	typed.Sequence = 7

	pkt, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(pkt)
	require.NoError(t, err)
	require.Equal(t, typed.TypeID, decoded.TypeID)
	require.Equal(t, uint32(7), decoded.Sequence)

	msg, err := decoded.Decode()
	require.NoError(t, err)
	require.Equal(t, &TargetPose{X: 3, Y: 4, Theta: 1.5}, msg)
}

func TestTypedFromRejectsUnserializable(t *testing.T) {
	_, err := TypedFrom(&CommandMsgStub{})
	require.ErrorIs(t, err, ErrNotSerializable)
}

// CommandMsgStub is a loop-only message without a wire form.
type CommandMsgStub struct{}

// NewMessage implements Message.
func (m *CommandMsgStub) NewMessage() fx.Message { return &CommandMsgStub{} }
