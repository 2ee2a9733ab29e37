package alert

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wb-go/wbf/zlog"

	mocks "github.com/aliskhannn/shift-reminder/internal/mocks/alert"
)

func TestMain(m *testing.M) {
	zlog.Init()
	os.Exit(m.Run())
}

func TestAlerter_Alert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	emailMock := mocks.NewMockNotifier(ctrl)
	telegramMock := mocks.NewMockNotifier(ctrl)

	a := New(
		map[string]Notifier{"email": emailMock, "telegram": telegramMock},
		map[string]string{"email": "ops@example.com", "telegram": "42"},
	)

	emailMock.EXPECT().Send(gomock.Any(), "ops@example.com", "subject", "body").Return(errors.New("smtp down"))
	telegramMock.EXPECT().Send(gomock.Any(), "42", "subject", "body").Return(nil)

	a.Alert(context.Background(), "subject", "body")
}

func TestAlerter_Alert_SkipsChannelsWithoutRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	emailMock := mocks.NewMockNotifier(ctrl)
	telegramMock := mocks.NewMockNotifier(ctrl)

	a := New(
		map[string]Notifier{"email": emailMock, "telegram": telegramMock},
		map[string]string{"telegram": "42"},
	)

	telegramMock.EXPECT().Send(gomock.Any(), "42", "s", "m").Return(nil)

	a.Alert(context.Background(), "s", "m")
}
