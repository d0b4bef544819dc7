package ports

import "context"

// Logger is the logging facade used by the service, the store and the binaries.
// Fields are attached as key/value pairs; adapters decide how they are rendered.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...map[string]interface{})
	Info(ctx context.Context, msg string, fields ...map[string]interface{})
	Warn(ctx context.Context, msg string, fields ...map[string]interface{})
	// Error records err alongside msg.
	Error(ctx context.Context, err error, msg string, fields ...map[string]interface{})
}
