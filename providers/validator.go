package providers

import "github.com/jjjonesjr33/petlibro/plugins/common"

// IValidatorProvider defines settings validator.
type IValidatorProvider interface {
	SetLogger(logger common.ILoggerProvider)
	Validate(object interface{}) bool
}
