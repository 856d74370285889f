package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintSessionKeys prints a fresh signing key for the cart session
// cookie, ready to paste into .env as SESSION_KEY.
func GenerateAndPrintSessionKeys() error {
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return fmt.Errorf("failed to generate session key")
	}

	fmt.Printf("SESSION_KEY=%s\n", base64.URLEncoding.EncodeToString(key))
	return nil
}
