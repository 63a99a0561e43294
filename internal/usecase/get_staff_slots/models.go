package get_staff_slots

import "time"

// Request модель запроса на получение доступных слотов мастера
type Request struct {
	StaffID int64     // ID мастера
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StaffID int64       // ID мастера
	Date    string      // Дата в формате YYYY-MM-DD
	Slots   []time.Time // Моменты начала доступных слотов по возрастанию
}
