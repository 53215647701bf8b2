package middleware

import (
	"crypto/subtle"

	"beer_inventory/config"
	"beer_inventory/internal/common"
	"beer_inventory/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// MutationSecretHeader là header chứa secret xác nhận thao tác ghi
const MutationSecretHeader = "X-Mutation-Secret"

// RequireMutationSecret trả về middleware yêu cầu secret dùng chung cho các thao tác ghi dữ liệu.
// Secret được so sánh constant-time để tránh timing attack. Request thiếu hoặc sai secret
// bị từ chối với 401; client có thể gửi lại cùng request với secret đúng.
func RequireMutationSecret(cfg *config.Configuration) fiber.Handler {
	return func(c fiber.Ctx) error {
		provided := c.Get(MutationSecretHeader)
		if provided == "" {
			logger.LogGate("refused", c, map[string]interface{}{
				"reason": "missing_secret",
			})
			HandleErrorResponse(c, common.ErrSecretMissing)
			return nil
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.MutationSecret)) != 1 {
			logger.LogGate("refused", c, map[string]interface{}{
				"reason": "invalid_secret",
			})
			HandleErrorResponse(c, common.ErrSecretInvalid)
			return nil
		}

		logger.LogGate("allowed", c, nil)
		return c.Next()
	}
}
