package middleware

import (
	"fmt"
	"net"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides which address identifies a client. With no trusted
// proxies the peer address is used and forwarding headers are ignored. With
// trusted CIDRs, X-Forwarded-For is walked from the right past those ranges
// only; loopback and private networks are not trusted implicitly.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", cidr, err)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...), nil
}
