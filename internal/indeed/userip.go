package indeed

import (
	"context"
	"net"
	"os"

	"github.com/samber/lo"
)

// DiscoverUserIP returns an address of this host to send as the userip parameter,
// preferring IPv4 over IPv6. It returns "" when no address can be resolved.
func DiscoverUserIP(ctx context.Context) string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return ""
	}
	return pickAddress(addrs)
}

func pickAddress(addrs []net.IPAddr) string {
	if v4, ok := lo.Find(addrs, func(a net.IPAddr) bool { return a.IP.To4() != nil }); ok {
		return v4.IP.String()
	}
	if v6, ok := lo.Find(addrs, func(a net.IPAddr) bool { return a.IP.To16() != nil }); ok {
		return v6.IP.String()
	}
	return ""
}
