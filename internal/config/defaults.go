package config

const (
	defaultRequestTimeout = 30

	defaultQuestionsEndpoint      = "/questions/"
	defaultQuestionCreateEndpoint = "/questions"
	defaultQuestionUpdateEndpoint = "/questions/:id"
	defaultQuestionDeleteEndpoint = "/questions/:id"
	defaultProgressListEndpoint   = "/progress/"
	defaultProgressGetEndpoint    = "/progress/:id"
	defaultProgressCreateEndpoint = "/progress/"
	defaultProgressUpdateEndpoint = "/progress/:id"

	defaultCacheBackend    = "json"
	defaultCacheJSONPath   = "~/.local/share/questlog/progress_ids.json"
	defaultCacheSQLitePath = "~/.local/share/questlog/progress_ids.db"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Backend: Backend{
			RequestTimeout: defaultRequestTimeout,
		},
		Endpoints: Endpoints{
			Questions:      defaultQuestionsEndpoint,
			QuestionCreate: defaultQuestionCreateEndpoint,
			QuestionUpdate: defaultQuestionUpdateEndpoint,
			QuestionDelete: defaultQuestionDeleteEndpoint,
			ProgressList:   defaultProgressListEndpoint,
			ProgressGet:    defaultProgressGetEndpoint,
			ProgressCreate: defaultProgressCreateEndpoint,
			ProgressUpdate: defaultProgressUpdateEndpoint,
		},
		Cache: Cache{
			Backend: defaultCacheBackend,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
