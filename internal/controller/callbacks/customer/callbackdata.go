package customer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/google/uuid"
)

// Callback data воронки записи: bk:<tag>:<action>[:<index>].
// tag - первые символы id диалога, по нему отсекаются кнопки старых сообщений.
// Варианты передаются индексом в текущем списке: место может не влезть в 64 байта.
const FunnelPrefix = "bk:"

const flowTagLen = 8

// FunnelAction действие пользователя в воронке
type FunnelAction string

const (
	ActionMode     FunnelAction = "m"
	ActionLocation FunnelAction = "l"
	ActionDate     FunnelAction = "d"
	ActionTime     FunnelAction = "t"
	ActionBack     FunnelAction = "back"
	ActionTopic    FunnelAction = "topic"
	ActionConfirm  FunnelAction = "ok"
	ActionCancel   FunnelAction = "x"
)

// indexed действия, которые выбирают вариант из списка
func (a FunnelAction) indexed() bool {
	switch a {
	case ActionMode, ActionLocation, ActionDate, ActionTime:
		return true
	}
	return false
}

func (a FunnelAction) known() bool {
	switch a {
	case ActionBack, ActionTopic, ActionConfirm, ActionCancel:
		return true
	}
	return a.indexed()
}

// FunnelCallback разобранные данные кнопки воронки
type FunnelCallback struct {
	Tag    string
	Action FunnelAction
	Index  int
}

// FlowTag короткий идентификатор диалога для callback data
func FlowTag(id uuid.UUID) string {
	return id.String()[:flowTagLen]
}

// FunnelData собирает callback data кнопки воронки
func FunnelData(flowID uuid.UUID, action FunnelAction) string {
	return FunnelPrefix + FlowTag(flowID) + ":" + string(action)
}

// FunnelOptionData собирает callback data кнопки выбора варианта
func FunnelOptionData(flowID uuid.UUID, action FunnelAction, index int) string {
	return fmt.Sprintf("%s:%d", FunnelData(flowID, action), index)
}

// ParseFunnelCallback разбирает callback data кнопки воронки
func ParseFunnelCallback(data string) (FunnelCallback, error) {
	rest, ok := strings.CutPrefix(data, FunnelPrefix)
	if !ok {
		return FunnelCallback{}, common.ErrInvalidFormat
	}

	parts := strings.Split(rest, ":")
	if len(parts) < 2 || len(parts) > 3 || len(parts[0]) != flowTagLen {
		return FunnelCallback{}, common.ErrInvalidFormat
	}

	cb := FunnelCallback{Tag: parts[0], Action: FunnelAction(parts[1])}
	if !cb.Action.known() {
		return FunnelCallback{}, fmt.Errorf("unknown action %q: %w", parts[1], common.ErrInvalidFormat)
	}

	if cb.Action.indexed() != (len(parts) == 3) {
		return FunnelCallback{}, common.ErrInvalidFormat
	}

	if len(parts) == 3 {
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return FunnelCallback{}, common.ErrInvalidFormat
		}
		cb.Index = idx
	}

	return cb, nil
}

// Matches проверяет, что кнопка нажата в сообщении текущего диалога
func (c FunnelCallback) Matches(flowID uuid.UUID) bool {
	return c.Tag == FlowTag(flowID)
}
