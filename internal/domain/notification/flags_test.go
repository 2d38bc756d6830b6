//go:build unit

package notification_test

import (
	"testing"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    notification.Kind
		wantErr bool
	}{
		{in: "confirm", want: notification.KindConfirm},
		{in: " REM24 ", want: notification.KindReminder24},
		{in: "rem2", want: notification.KindReminder2},
		{in: "rem1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := notification.ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, notification.ErrInvalidKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlags_Mark(t *testing.T) {
	var f notification.Flags
	assert.False(t, f.Sent(notification.KindReminder24))

	f.Mark(notification.KindReminder24)
	f.Mark(notification.KindReminder24)

	assert.True(t, f.Sent(notification.KindReminder24))
	assert.False(t, f.Sent(notification.KindReminder2))
	assert.False(t, f.Sent(notification.KindConfirm))
}
