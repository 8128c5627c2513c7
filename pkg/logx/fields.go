package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCacheBackend    = "cache-backend"
	FieldCacheKey        = "cache-key"
	FieldConfidenceTier  = "confidence-tier"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldGridPoints      = "grid-points"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldOptimalPrice    = "optimal-price"
	FieldProducts        = "products"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSeason          = "season"
	FieldSegment         = "segment"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserAgent       = "user-agent"
)
