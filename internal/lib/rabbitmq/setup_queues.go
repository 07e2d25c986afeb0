package rabbitmq

// QueueConfig — имя очереди и ключ маршрутизации для привязки к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetBillingQueues возвращает очереди событий биллинга, которые читает
// подсистема уведомлений клуба.
func GetBillingQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "billing.committed", RoutingKey: "committed"},
		{QueueName: "billing.recalculated", RoutingKey: "recalculated"},
	}
}
