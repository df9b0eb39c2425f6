package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/mentor_booking_bot/internal/availability"
	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPageSize = 20

// CourseProvider источник курсов и их расписания
type CourseProvider interface {
	ListCourses(ctx context.Context, limit, offset int) ([]*model.Course, error)
	GetCourseWithSchedule(ctx context.Context, courseID int64) (*model.Course, error)
}

type API struct {
	courses CourseProvider
	logger  *zap.Logger
}

// NewRouter собирает gin-роутер API:
//
//	GET  /healthz
//	GET  /api/courses
//	GET  /api/courses/:id/options?mode=&location=&date=
//	POST /api/courses/:id/check
func NewRouter(courses CourseProvider, logger *zap.Logger) *gin.Engine {
	a := &API{courses: courses, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", a.Health)

	api := router.Group("/api")
	{
		api.GET("/courses", a.ListCourses)
		api.GET("/courses/:id/options", a.Options)
		api.POST("/courses/:id/check", a.Check)
	}

	return router
}

type courseCard struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	Mentor      string       `json:"mentor,omitempty"`
	Modes       []model.Mode `json:"modes"`
	Bookable    bool         `json:"bookable"`
}

type pageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

type optionsQuery struct {
	Mode     model.Mode `form:"mode" binding:"omitempty,oneof=online offline"`
	Location string     `form:"location"`
	Date     string     `form:"date"`
}

type checkRequest struct {
	Mode     model.Mode `json:"mode" binding:"omitempty,oneof=online offline"`
	Location string     `json:"location"`
	Date     string     `json:"date"`
	Time     string     `json:"time"`
	Topic    string     `json:"topic" binding:"max=300"`
}

type checkResponse struct {
	Record   model.ScheduleRecord `json:"record"`
	Mode     model.Mode           `json:"mode"`
	Location string               `json:"location,omitempty"`
	Topic    string               `json:"topic,omitempty"`
}

// Health GET /healthz
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCourses GET /api/courses?limit=&offset=
func (a *API) ListCourses(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultPageSize
	}

	courses, err := a.courses.ListCourses(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		a.internalError(c, err)
		return
	}

	cards := make([]courseCard, 0, len(courses))
	for _, course := range courses {
		modes := availability.AvailableModes(availability.ValidSchedules(course.Schedules))
		if modes == nil {
			modes = []model.Mode{}
		}
		card := courseCard{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Price:       course.Price,
			Modes:       modes,
			Bookable:    len(modes) > 0,
		}
		if course.Mentor != nil {
			card.Mentor = course.Mentor.DisplayName()
		}
		cards = append(cards, card)
	}

	c.JSON(http.StatusOK, gin.H{"courses": cards})
}

// Options GET /api/courses/:id/options - варианты для частичного выбора
func (a *API) Options(c *gin.Context) {
	var q optionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flow, ok := a.openFlow(c)
	if !ok {
		return
	}

	err := replay(flow, booking.Draft{Mode: q.Mode, Location: q.Location, Date: q.Date})
	if err != nil {
		a.selectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, flow.Snapshot())
}

// Check POST /api/courses/:id/check - проверяет полный выбор по расписанию
func (a *API) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flow, ok := a.openFlow(c)
	if !ok {
		return
	}

	draft := booking.Draft{Mode: req.Mode, Location: req.Location, Date: req.Date, Time: req.Time}
	if err := replay(flow, draft); err != nil {
		a.selectionError(c, err)
		return
	}

	conf, err := flow.Submit(req.Topic)
	if err != nil {
		a.selectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkResponse{
		Record:   conf.Record,
		Mode:     conf.Mode,
		Location: conf.Location,
		Topic:    conf.Topic,
	})
}

// openFlow загружает курс из :id и открывает по нему диалог.
// При ошибке ответ уже записан.
func (a *API) openFlow(c *gin.Context) (*booking.Flow, bool) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || courseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return nil, false
	}

	course, err := a.courses.GetCourseWithSchedule(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		a.internalError(c, err)
		return nil, false
	}
	if !course.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrCourseInactive.Error()})
		return nil, false
	}

	flow := booking.NewFlow(course)
	if err := flow.Available(); err != nil {
		a.selectionError(c, err)
		return nil, false
	}
	return flow, true
}

// replay проводит диалог по полям черновика в порядке воронки.
// Пустые поля пропускаются, дальше их отсутствие заметит Submit.
// Место для online занятий не учитывается.
func replay(flow *booking.Flow, d booking.Draft) error {
	if d.Mode != "" {
		if err := flow.SetMode(d.Mode); err != nil {
			return err
		}
	}
	if d.Location != "" && d.Mode != model.ModeOnline {
		if err := flow.SetLocation(d.Location); err != nil {
			return err
		}
	}
	if d.Date != "" {
		if err := flow.SetDate(d.Date); err != nil {
			return err
		}
	}
	if d.Time != "" {
		if err := flow.SetTime(d.Time); err != nil {
			return err
		}
	}
	return nil
}

// selectionError переводит ошибки диалога в HTTP статусы
func (a *API) selectionError(c *gin.Context, err error) {
	var incomplete *booking.IncompleteSelectionError

	switch {
	case errors.Is(err, booking.ErrNoScheduleAvailable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "missing": incomplete.Missing})
	case errors.Is(err, booking.ErrStaleSelection):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		a.internalError(c, err)
	}
}

func (a *API) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	a.logger.Error("API request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
