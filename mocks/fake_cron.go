//+build !release

package mocks

type fakeCron struct {
	callback func()
}

func (f *fakeCron) AddFunc(spec string, cmd func()) (int, error) {
	f.callback = cmd
	return 1, nil
}

func (f *fakeCron) RemoveFunc(id int) {
}

// Fire invokes the registered job.
func (f *fakeCron) Fire() {
	if nil != f.callback {
		f.callback()
	}
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *fakeCron {
	return &fakeCron{}
}
