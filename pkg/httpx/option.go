package httpx

type Option func(*LoggingRoundTripper)

// WithTraceID прокидывает trace id из контекста запроса в заголовок
// contextx.HeaderTraceID. Если в контексте его нет, выпускается новый.
func WithTraceID() Option {
	return func(rt *LoggingRoundTripper) {
		rt.propagateTraceID = true
	}
}

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}
