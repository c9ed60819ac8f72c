package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/handler/http/response"
)

// Recovery перехватывает панику, логирует её с request_id и стектрейсом
// и отвечает 500. Аналог стандартного gin.Recovery(), но через slog.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := GetRequestIDFromContext(c)
				requestLogger := log.With(slog.String("request_id", reqID))

				// Обрыв соединения клиентом — не повод для стектрейса
				var brokenPipe bool
				if ne, ok := err.(*net.OpError); ok {
					if se, ok := ne.Err.(*os.SyscallError); ok {
						msg := strings.ToLower(se.Error())
						if strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer") {
							brokenPipe = true
						}
					}
				}

				httpRequest, _ := httputil.DumpRequest(c.Request, false)

				if brokenPipe {
					requestLogger.Error("Connection error recovered",
						slog.Any("error", err),
						slog.String("request", string(httpRequest)),
					)
					c.Abort()
					return
				}

				requestLogger.Error("Panic recovered",
					slog.Any("error", err),
					slog.String("request", string(httpRequest)),
					slog.String("stack", string(debug.Stack())),
				)

				response.SendError(c, http.StatusInternalServerError, "Internal server error")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
