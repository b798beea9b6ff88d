package config

// Application constants
const (
	AppName     = "Peilbuis GPS"
	ServiceName = "peilbuis"

	// Input
	DefaultDelimiter = ";"
	EncodingUTF16    = "utf-16"
	EncodingUTF8     = "utf-8"

	// Output
	FormatXLSX          = "xlsx"
	FormatCSV           = "csv"
	DefaultResultSuffix = "_resultaten"
	DefaultSheetName    = "Resultaten"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	ConfigFileName = "peilbuis.yaml"
)

// SurveyFileExtensions are the extensions accepted as raw survey input
var SurveyFileExtensions = []string{".txt", ".csv", ".xlsx"}
