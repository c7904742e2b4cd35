package notify

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
)

// ErrPrivateTarget is returned for webhook targets in loopback, private, link-local or unspecified ranges
var ErrPrivateTarget = errors.New("webhook target is not a public address")

// CheckURL accepts absolute http(s) urls. Unless allowPrivate is set, hosts that are literal
// non-public addresses or localhost are rejected. Names resolving to private addresses are
// caught at delivery time by the notifier's dialer.
func CheckURL(raw string, allowPrivate bool) error {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid webhook url %q", raw)
	}
	if allowPrivate {
		return nil
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return fmt.Errorf("%w: %s", ErrPrivateTarget, host)
	}
	if addr, err := netip.ParseAddr(host); err == nil && !isPublic(addr) {
		return fmt.Errorf("%w: %s", ErrPrivateTarget, host)
	}
	return nil
}

// isPublic reports whether the address may receive webhook deliveries
func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() && !addr.IsLoopback() && !addr.IsPrivate() && !addr.IsUnspecified() &&
		!addr.IsLinkLocalUnicast() && !addr.IsLinkLocalMulticast() && !addr.IsInterfaceLocalMulticast() &&
		!addr.IsMulticast()
}

// dialControl rejects connections to non-public addresses after name resolution
func dialControl(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("parse dial address %q: %w", address, err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("parse dial address %q: %w", address, err)
	}
	if !isPublic(addr) {
		return fmt.Errorf("%w: %s", ErrPrivateTarget, addr)
	}
	return nil
}
