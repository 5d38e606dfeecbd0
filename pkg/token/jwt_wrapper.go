package token

import "course_content_service/pkg/config"

// Function variables so the account usecase tests can substitute the
// JWT calls without a real secret.
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper indirection point used by the account usecase
func GenerateJWTWrapper(userID, role string) (string, error) {
	return GenerateJWTFunc(userID, role, config.EnvConfig.AccountService)
}

// ParseJWTWrapper indirection point used by the account usecase
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
