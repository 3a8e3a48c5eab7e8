package pb

import (
	"context"
	"testing"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestInputWireLayout(t *testing.T) {
	in := NewInput(chunk.Frame{Payload: []byte{0xde, 0xad}, Name: "a", Kind: ".png"}, Params{ColorsPerRow: 3})

	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(in)
	require.NoError(t, err)

	want := []byte{
		0x0a, 0x02, 0xde, 0xad, // fileBytes
		0x12, 0x01, 'a', // fileName
		0x1a, 0x04, '.', 'p', 'n', 'g', // fileType
		0x20, 0x03, // colorsPerRow
	}
	assert.Equal(t, want, b)
}

func TestInputKeepsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer peer")
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "logo.png")
	b = protowire.AppendTag(b, 8, protowire.VarintType)
	width := int64(-1)
	b = protowire.AppendVarint(b, uint64(width))

	var in ExtractPaletteInput
	require.NoError(t, proto.Unmarshal(b, &in))
	assert.Equal(t, "logo.png", in.GetFileName())
	assert.EqualValues(t, -1, in.Params().Width)
	assert.Nil(t, in.GetFileBytes())
	assert.NotEmpty(t, in.ProtoReflect().GetUnknown())
}

func TestOutputFrame(t *testing.T) {
	f := chunk.Frame{Payload: []byte("palette"), Name: "p.png", Kind: ".png"}
	b, err := proto.Marshal(NewOutput(f))
	require.NoError(t, err)

	var got ExtractPaletteOutput
	require.NoError(t, proto.Unmarshal(b, &got))
	assert.Equal(t, f, got.Frame())

	var nilOut *ExtractPaletteOutput
	assert.Equal(t, chunk.Frame{}, nilOut.Frame())
}

func TestInvalidUTF8IsRejected(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0xff, 0xfe})

	var in ExtractPaletteInput
	assert.Error(t, proto.Unmarshal(b, &in))

	_, err := proto.Marshal(NewInput(chunk.Frame{Name: string([]byte{0xff})}, Params{}))
	assert.Error(t, err)
}

func TestTruncatedMessage(t *testing.T) {
	var in ExtractPaletteInput
	assert.Error(t, proto.Unmarshal([]byte{0x0a, 0x05, 0x01}, &in))
}

func TestServiceDescriptor(t *testing.T) {
	sd := File_pixelforging_proto.Services().ByName("PixelForging")
	require.NotNil(t, sd)
	require.Equal(t, 4, sd.Methods().Len())
	for _, m := range []string{MethodExtractPalette, MethodEcho, MethodInvert, MethodResize} {
		md := sd.Methods().ByName(protoreflect.Name(m))
		require.NotNil(t, md, m)
		assert.True(t, md.IsStreamingClient() && md.IsStreamingServer(), m)
	}
	assert.Equal(t, "pixelforging_grpc.PixelForging", PixelForging_ServiceDesc.ServiceName)
}

func TestOpenStreamUnknownMethod(t *testing.T) {
	_, err := OpenStream(context.Background(), NewPixelForgingClient(nil), "Sharpen")
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
