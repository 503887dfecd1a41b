package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name string) error

	// SendLeadPurchased уведомляет клиента, что провайдер купил его заявку
	SendLeadPurchased(to, providerName, serviceName string) error

	// SendBackgroundCheckResult уведомляет провайдера об итоге проверки
	SendBackgroundCheckResult(to string, approved bool) error

	// Close закрывает соединение с провайдером
	Close() error
}
