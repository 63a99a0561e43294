package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	ServiceID    int64     // ID услуги
	StaffID      int64     // ID мастера
	Date         time.Time // Дата записи (без времени)
	StartTime    time.Time // Время начала (только часы и минуты)
	PaymentType  string    // Тип оплаты: "full" или "down"
	ClientName   string    // Имя клиента
	ClientEmail  string    // Email клиента
	Phone        *string   // Телефон клиента (опционально)
	Address      *string   // Адрес клиента (опционально)
	WantReminder bool      // Отправлять ли напоминание
}

// Response модель ответа с созданной записью
type Response struct {
	IDRequest          string // Публичный идентификатор заявки
	ServiceID          int64
	StaffID            int64
	Date               string // Дата в формате YYYY-MM-DD
	StartTime          string // Время начала в формате HH:MM:SS
	EndTime            string // Время окончания в формате HH:MM:SS
	PaymentType        string
	RescheduleAttempts int
}
