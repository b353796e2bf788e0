package logger

// Wrapper for logger L.
// Strictly bound to the single logger's source.
// Provides more convenient and readable methods for creating logs.
type Source struct {
	logger Logger
	src    string
}

// Creates a new Source with specified source.
// Will use specified logger to create logs.
func NewSource(src string, logger Logger) *Source {
	return &Source{
		src:    src,
		logger: logger,
	}
}

func (s *Source) log(level logLevel, msg string, err string, meta Meta) {
	entry := NewLogEntry(level, s.src, msg, err, meta)
	s.logger.Log(&entry)
}

// Same as Logger.Log(), but sets level to the TraceLogLevel
func (s *Source) Trace(msg string, meta Meta) {
	s.log(TraceLogLevel, msg, "", meta)
}

// Same as Logger.Log(), but sets level to the DebugLogLevel
func (s *Source) Debug(msg string, meta Meta) {
	s.log(DebugLogLevel, msg, "", meta)
}

// Same as Logger.Log(), but sets level to the InfoLogLevel
func (s *Source) Info(msg string, meta Meta) {
	s.log(InfoLogLevel, msg, "", meta)
}

// Same as Logger.Log(), but sets level to the WarningLogLevel
func (s *Source) Warning(msg string, meta Meta) {
	s.log(WarningLogLevel, msg, "", meta)
}

// Same as Logger.Log(), but sets level to the ErrorLogLevel
func (s *Source) Error(msg string, err string, meta Meta) {
	s.log(ErrorLogLevel, msg, err, meta)
}

// Same as Logger.Log(), but sets level to the FatalLogLevel
func (s *Source) Fatal(msg string, err string, meta Meta) {
	s.log(FatalLogLevel, msg, err, meta)
}

// Same as Logger.Log(), but sets level to the PanicLogLevel
func (s *Source) Panic(msg string, err string, meta Meta) {
	s.log(PanicLogLevel, msg, err, meta)
}
