package auth

import "go.uber.org/zap"

// LogAuthAttempt record an authentication attempt.
// status: Success|Fail, identifier: email or subject (optional), message: reason (optional)
func LogAuthAttempt(log *zap.Logger, status, identifier, message string) {
	if log == nil {
		return
	}
	fields := []zap.Field{zap.String("status", status)}
	if identifier != "" {
		fields = append(fields, zap.String("identifier", identifier))
	}
	if message != "" {
		fields = append(fields, zap.String("reason", message))
	}
	if status == "Success" {
		log.Debug("auth attempt", fields...)
		return
	}
	log.Warn("auth attempt", fields...)
}
