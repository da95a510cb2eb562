package notifier

import "errors"

var (
	// ErrConnection возвращается при ошибке подключения к брокеру
	ErrConnection = errors.New("notifier: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notifier: failed to publish event")
)
