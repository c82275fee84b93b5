package observability

var LoggerConfig = loggerConfig
