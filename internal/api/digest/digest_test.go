package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Request_ShouldSurviveWire(t *testing.T) {
	req := Request{
		RequestID:     "abc",
		UserID:        9007199254740993,
		ReferenceDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Source:        SourceSchedule,
	}

	raw, err := req.Marshal()
	require.NoError(t, err)
	got, err := UnmarshalRequest(raw, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func Test_Request_ShouldAllowMissingDate(t *testing.T) {
	raw, err := Request{RequestID: "x", UserID: 1, Source: SourceCommand}.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalRequest(raw, time.UTC)

	require.NoError(t, err)
	assert.True(t, got.ReferenceDate.IsZero())
}

func Test_UnmarshalRequest_ShouldRejectGarbage(t *testing.T) {
	_, err := UnmarshalRequest([]byte{0xff, 0x01}, time.UTC)

	assert.Error(t, err)
}

func Test_Result_ShouldConvertToStruct(t *testing.T) {
	res := Result{UserID: 42, Kind: "upcoming", Text: "Rent - $1200.0 due on 2024-07-01"}

	s, err := res.ToStruct()
	require.NoError(t, err)
	got, err := ResultFromStruct(s)

	require.NoError(t, err)
	assert.Equal(t, res, got)
	assert.True(t, got.Success())
}
