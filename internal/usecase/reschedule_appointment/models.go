package reschedule_appointment

import "time"

// Request модель запроса на перенос записи
type Request struct {
	IDRequest string    // Публичный идентификатор заявки
	Date      time.Time // Новая дата (без времени)
	StartTime time.Time // Новое время начала (только часы и минуты)
	StaffID   *int64    // Новый мастер (опционально, по умолчанию прежний)
	Reason    *string   // Причина переноса (опционально)
}

// Response модель ответа с созданным переносом
type Response struct {
	IDRequest string // Публичный идентификатор заявки
	Date      string // Предложенная дата в формате YYYY-MM-DD
	StartTime string // Предложенное время начала в формате HH:MM:SS
	EndTime   string // Предложенное время окончания в формате HH:MM:SS
	StaffID   int64  // Мастер, к которому переносится запись
	Status    string // Статус переноса (pending)
}
