package email

import "sync"

// MockProvider пишет письма в память. Используется в dev-окружении
// без SMTP и в тестах.
type MockProvider struct {
	mu   sync.Mutex
	sent []SentEmail
}

type SentEmail struct {
	To      string
	Subject string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) SendWelcome(to, name string) error {
	p.record(to, "welcome")
	return nil
}

func (p *MockProvider) SendLeadPurchased(to, providerName, serviceName string) error {
	p.record(to, "lead_purchased")
	return nil
}

func (p *MockProvider) SendBackgroundCheckResult(to string, approved bool) error {
	p.record(to, "background_check_result")
	return nil
}

func (p *MockProvider) Close() error {
	return nil
}

// Sent возвращает копию отправленных писем
func (p *MockProvider) Sent() []SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]SentEmail, len(p.sent))
	copy(out, p.sent)
	return out
}

func (p *MockProvider) record(to, subject string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, SentEmail{To: to, Subject: subject})
}
