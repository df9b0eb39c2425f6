package customer

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/availability"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const (
	CoursesPage    = "courses_page:" // courses_page:<page>
	CoursesPerPage = 5

	descriptionPreview = 120
)

// BuildCatalog строит страницу каталога: карточки курсов и кнопки записи.
// Кнопка записи есть только у курсов с валидным расписанием.
func BuildCatalog(courses []*model.Course, page, totalPages int) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	if len(courses) == 0 {
		return "📚 Пока нет ни одного открытого курса.", kb.AddBackToMainButton().Build()
	}

	var sb strings.Builder
	sb.WriteString("📚 <b>Каталог курсов</b>\n\n")

	for i, course := range courses {
		modes := availability.AvailableModes(availability.ValidSchedules(course.Schedules))

		fmt.Fprintf(&sb, "<b>%d. %s</b> · %s\n",
			page*CoursesPerPage+i+1,
			html.EscapeString(course.Title),
			formatting.FormatPrice(course.Price))
		if course.Mentor != nil {
			fmt.Fprintf(&sb, "👤 %s\n", html.EscapeString(course.Mentor.DisplayName()))
		}
		if desc := preview(course.Description, descriptionPreview); desc != "" {
			fmt.Fprintf(&sb, "%s\n", html.EscapeString(desc))
		}
		fmt.Fprintf(&sb, "Форматы: %s\n\n", formatting.ModesLine(modes))

		if len(modes) > 0 {
			kb.Row(keyboard.Button("📝 "+course.Title, BookCourse+strconv.FormatInt(course.ID, 10)))
		}
	}

	kb.AddPagination(CoursesPage, page, totalPages)
	kb.AddBackToMainButton()

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// SendCatalog показывает страницу каталога.
// Если messageID не 0, редактирует это сообщение вместо отправки нового.
func SendCatalog(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, page, messageID int) error {
	total, err := h.CourseService.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}

	totalPages := (total + CoursesPerPage - 1) / CoursesPerPage
	if page >= totalPages {
		page = max(totalPages-1, 0)
	}

	courses, err := h.CourseService.ListCourses(ctx, CoursesPerPage, page*CoursesPerPage)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}

	text, kb := BuildCatalog(courses, page, totalPages)

	if messageID != 0 {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		if common.IsMessageNotModifiedError(err) {
			return nil
		}
		return err
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	return err
}

// HandleCoursesPage листает каталог курсов
func HandleCoursesPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	page, err := common.ParseIDFromCallback(callback.Data)
	if err != nil || page < 0 {
		h.Logger.Error("Failed to parse page number", zap.String("data", callback.Data), zap.Error(err))
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	if err := SendCatalog(ctx, b, h, hc.ChatID, int(page), hc.Message.ID); err != nil {
		common.HandleError(hc, err, "courses page")
		return
	}
	hc.Answer("")
}

// preview обрезает текст до limit символов
func preview(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
