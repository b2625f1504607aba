package session

const (
	// TokenSecretName is the key used to persist the auth token
	// in the host's secret store.
	TokenSecretName = "petlibro_token"

	logSystem = "session"

	loginPath  = "/member/auth/login"
	logoutPath = "/member/auth/logout"

	headerSource   = "ANDROID"
	headerLanguage = "EN"
	headerVersion  = "1.3.45"

	appID = 1
	appSn = "c35772530d1041699c87fe62348507a8"
)

// Vendor application codes.
const (
	codeOK          = 0
	codeInvalidAuth = 1008
	codeNotLoggedIn = 1009
)
