package get_service_slots

import "time"

// Request модель запроса на получение доступных слотов по услуге
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ServiceID   int64    // ID услуги
	ServiceName string   // Название услуги
	Date        string   // Дата в формате YYYY-MM-DD
	Slots       []string // Время начала слотов в 12-часовом формате ("09:00 AM")
}
