package confirm_reschedule

// Request модель запроса на подтверждение переноса
type Request struct {
	IDRequest string // Публичный идентификатор заявки
}

// Response модель ответа с обновленной заявкой
type Response struct {
	IDRequest          string // Публичный идентификатор заявки
	Date               string // Действующая дата в формате YYYY-MM-DD
	StartTime          string // Действующее время начала в формате HH:MM:SS
	EndTime            string // Действующее время окончания в формате HH:MM:SS
	StaffID            int64  // Действующий мастер
	RescheduleAttempts int    // Количество выполненных переносов
}
