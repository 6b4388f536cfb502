package email

// Provider - шлюз уведомлений. Единственная операция: письмо владельцу
// сайта с темой и текстом. Вызывается fire-and-forget: ошибка отправки
// логируется вызывающим и никогда не влияет на ответ клиенту.
type Provider interface {
	Send(subject, body string) error
}
