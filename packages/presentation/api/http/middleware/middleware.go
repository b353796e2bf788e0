package middleware

import "hobbes/packages/common/logger"

var log = logger.NewSource("MIDDLEWARE", logger.Default)
