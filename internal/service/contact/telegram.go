package contact

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

// Notifier 접수된 문의를 메신저로 전달합니다.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// messageMaxLength 텔레그램 메시지 최대 길이(4096자)에서 여유를 둔 값입니다.
const messageMaxLength = 3900

// botClient 텔레그램 봇 API 중 사용하는 기능입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier 문의 내용을 텔레그램 채팅방으로 전달합니다.
type TelegramNotifier struct {
	client botClient
	chatID int64
}

var _ Notifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier 봇 토큰으로 텔레그램 클라이언트를 생성합니다. 생성 시 봇 정보를 조회합니다.
func NewTelegramNotifier(botToken string, chatID int64, timeout time.Duration) (*TelegramNotifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(botToken),
		"chat_id":   chatID,
	}).Debug("텔레그램 봇 클라이언트 초기화")

	botAPI, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}

	return newTelegramNotifier(botAPI, chatID), nil
}

func newTelegramNotifier(client botClient, chatID int64) *TelegramNotifier {
	if client == nil {
		panic("contact: 텔레그램 클라이언트가 nil입니다")
	}
	return &TelegramNotifier{client: client, chatID: chatID}
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.client.Send(tgbotapi.NewMessage(n.chatID, strutil.Truncate(text, messageMaxLength))); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 메시지 전송에 실패했습니다")
	}
	return nil
}
