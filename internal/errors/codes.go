package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeTimeout          Code = "TIMEOUT_ERROR"

	// Platform / provider codes
	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeProviderFailure   Code = "PROVIDER_FAILURE"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"
	CodeThrottled         Code = "PLATFORM_THROTTLED"

	// Snapshot store codes
	CodeSnapshotNotFound Code = "SNAPSHOT_NOT_FOUND"
	CodeSnapshotIO       Code = "SNAPSHOT_IO_ERROR"
	CodeSnapshotCorrupt  Code = "SNAPSHOT_CORRUPT"
	CodeInvalidLocation  Code = "INVALID_LOCATION"
	CodeInvalidEntry     Code = "SNAPSHOT_INVALID_ENTRY"

	CodeReportError Code = "REPORT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
