package constants

const (
	APP_NAME   = "Extreme Precision"
	PUBLIC_URL = "https://extremeprecision.com"

	// home page shows a preview of the first few services
	MAX_SERVICES_ON_HOME = 3
	MAX_PAGE_CONTENT_LEN = 20000
)
