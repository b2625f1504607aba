package providers

// ICronProvider defines cron provider used for standalone polling
// when the host's own scheduler is not driving the hub.
type ICronProvider interface {
	AddFunc(spec string, cmd func()) (int, error)
	RemoveFunc(id int)
}
