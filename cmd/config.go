package cmd

type Config struct {
	HTTPPort                  string
	LogLevel                  string
	KafkaHost                 string
	KafkaOperationEventsTopic string
	StockReportSchedule       string
	MetricsRefreshSchedule    string
}
