package customer

import (
	"testing"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFlowID = uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

func TestFunnelDataRoundTrip(t *testing.T) {
	data := FunnelOptionData(testFlowID, ActionDate, 12)
	assert.Equal(t, "bk:1b4e28ba:d:12", data)
	assert.LessOrEqual(t, len(data), 64)

	cb, err := ParseFunnelCallback(data)
	require.NoError(t, err)
	assert.Equal(t, ActionDate, cb.Action)
	assert.Equal(t, 12, cb.Index)
	assert.True(t, cb.Matches(testFlowID))
	assert.False(t, cb.Matches(uuid.New()))

	cb, err = ParseFunnelCallback(FunnelData(testFlowID, ActionConfirm))
	require.NoError(t, err)
	assert.Equal(t, ActionConfirm, cb.Action)
	assert.Zero(t, cb.Index)
}

func TestParseFunnelCallbackRejectsMalformed(t *testing.T) {
	tests := []string{
		"book_course:1",
		"bk:",
		"bk:1b4e28ba",
		"bk:short:m:0",
		"bk:1b4e28ba:zz",
		"bk:1b4e28ba:m",     // выбор без индекса
		"bk:1b4e28ba:ok:1",  // индекс у кнопки без вариантов
		"bk:1b4e28ba:t:-1",  // отрицательный индекс
		"bk:1b4e28ba:t:abc", // не число
		"bk:1b4e28ba:t:1:2", // лишняя часть
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := ParseFunnelCallback(data)
			assert.ErrorIs(t, err, common.ErrInvalidFormat)
		})
	}
}
