package usecase

// Notifier receives change events for connected clients.
type Notifier interface {
	PreferencesUpdated(key string, value any)
	PreferencesReset()
	CacheCleared(key string)
}

type noopNotifier struct{}

func (noopNotifier) PreferencesUpdated(string, any) {}
func (noopNotifier) PreferencesReset()              {}
func (noopNotifier) CacheCleared(string)            {}
