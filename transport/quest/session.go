package quest

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionExpiry inspects the jar for a JWT-shaped session cookie and
// returns its expiry. The token is parsed unverified: we are the client,
// the signature belongs to the server, and the claim is only used for
// logging how long the session lasts.
func (c *Client) sessionExpiry() (time.Time, bool) {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if strings.Count(cookie.Value, ".") != 2 {
			continue
		}

		token, _, err := jwt.NewParser().ParseUnverified(cookie.Value, jwt.MapClaims{})
		if err != nil {
			continue
		}
		exp, err := token.Claims.GetExpirationTime()
		if err != nil || exp == nil {
			continue
		}
		return exp.Time, true
	}
	return time.Time{}, false
}
