package tenant

import "strings"

// Resolve maps a request host to the tenant subdomain it addresses.
// It returns ok=false for the main site (bare root domain, www, localhost,
// the loopback IP) and for any host outside the root domain entirely.
func Resolve(host, rootDomain string) (string, bool) {
	// ports never participate in tenant matching
	host = stripPort(host)

	if host == "localhost" || host == "127.0.0.1" {
		return "", false
	}

	// vendor.localhost pattern used in development
	if strings.HasSuffix(host, ".localhost") {
		sub := strings.TrimSuffix(host, ".localhost")
		if sub == "www" {
			return "", false
		}
		return sub, true
	}

	domain := stripPort(rootDomain)
	if host == domain || host == "www."+domain {
		return "", false
	}

	if strings.HasSuffix(host, "."+domain) {
		sub := strings.TrimSuffix(host, "."+domain)
		if sub == "www" {
			return "", false
		}
		return sub, true
	}

	return "", false
}

func stripPort(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}
