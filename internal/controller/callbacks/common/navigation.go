package common

import (
	"context"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// MainMenuText текст главного меню
const MainMenuText = "📋 Главное меню\n\n" +
	"Доступные команды:\n" +
	"/courses - Каталог курсов\n" +
	"/mybookings - Мои записи\n" +
	"/help - Справка"

// HandleBackToMain возвращает пользователя к главному меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	// Открытый диалог записи при этом отменяется
	h.StateManager.ClearState(callback.From.ID)

	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   MainMenuText,
	})

	AnswerCallback(ctx, b, callback.ID, "Возврат в главное меню")
}

// HandleBackToCourses показывает каталог курсов новым сообщением
func HandleBackToCourses(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	update := &models.Update{
		Message: &models.Message{
			Chat: models.Chat{ID: msg.Chat.ID},
			From: &callback.From,
		},
	}

	h.HandleCourses(ctx, b, update)
	AnswerCallback(ctx, b, callback.ID, "")
}
