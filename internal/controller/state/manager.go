package state

import (
	"errors"
	"sync"
	"time"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
)

// ErrNoBookingSession у пользователя нет открытого диалога записи
var ErrNoBookingSession = errors.New("no booking session")

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
	now    func() time.Time
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
		now:    time.Now,
	}
}

// userData возвращает запись пользователя, создавая её при необходимости.
// Вызывать под sm.mu.Lock.
func (sm *Manager) userData(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	userData.UpdatedAt = sm.now()
	return userData
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		userData, exists := sm.states[telegramID]
		if !exists {
			return
		}
		// Без диалога записи запись пользователя больше не нужна
		if userData.Booking == nil {
			delete(sm.states, telegramID)
			return
		}
	}

	sm.userData(telegramID).State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.userData(telegramID).Data[key] = value
}

// ClearState очищает состояние, данные и диалог записи пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// StartBooking открывает новый диалог записи вместо предыдущего
func (sm *Manager) StartBooking(telegramID int64, flow *booking.Flow, courseTitle string, chatID int64, messageID int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData := sm.userData(telegramID)
	userData.State = StateNone
	userData.Booking = &BookingSession{
		Flow:        flow,
		CourseTitle: courseTitle,
		ChatID:      chatID,
		MessageID:   messageID,
	}
}

// WithBooking выполняет fn над открытым диалогом записи пользователя.
// Вызовы для одного диалога выполняются по очереди.
func (sm *Manager) WithBooking(telegramID int64, fn func(session *BookingSession) error) error {
	sm.mu.Lock()
	userData, exists := sm.states[telegramID]
	if !exists || userData.Booking == nil {
		sm.mu.Unlock()
		return ErrNoBookingSession
	}
	userData.UpdatedAt = sm.now()
	session := userData.Booking
	sm.mu.Unlock()

	session.mu.Lock()
	defer session.mu.Unlock()

	return fn(session)
}

// EndBooking закрывает диалог записи, если он всё ещё тот же самый
func (sm *Manager) EndBooking(telegramID int64, flow *booking.Flow) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists || userData.Booking == nil || userData.Booking.Flow != flow {
		return
	}

	if userData.State == StateBookingTopic {
		userData.State = StateNone
	}
	userData.Booking = nil
	if userData.State == StateNone && len(userData.Data) == 0 {
		delete(sm.states, telegramID)
	}
}

// SweepIdle удаляет пользователей, не проявлявших активность с olderThan.
// Открытые диалоги записи при этом отменяются.
func (sm *Manager) SweepIdle(olderThan time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for telegramID, userData := range sm.states {
		if !userData.UpdatedAt.Before(olderThan) {
			continue
		}
		if session := userData.Booking; session != nil && session.mu.TryLock() {
			_ = session.Flow.Cancel()
			session.mu.Unlock()
		}
		delete(sm.states, telegramID)
		removed++
	}
	return removed
}
