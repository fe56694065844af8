package intake

import (
	"fmt"
	"net/netip"
	"strings"

	"dnsintake/internal/domain/models"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// NormalizeQuery checks the fields of q and returns it with a canonical
// address, a lower-case fully qualified domain and an upper-case type.
// Internationalized names are stored in their punycode form.
func NormalizeQuery(q models.DNSQuery) (models.DNSQuery, error) {
	addr, err := normalizeAddress(q.IPAddress)
	if err != nil {
		return models.DNSQuery{}, err
	}

	domain := strings.TrimSpace(q.Domain)
	if domain == "" {
		return models.DNSQuery{}, fmt.Errorf("empty domain: %w", ErrMalformedInput)
	}
	domain, err = idna.Punycode.ToASCII(domain)
	if err != nil {
		return models.DNSQuery{}, fmt.Errorf("invalid domain %q: %w", q.Domain, ErrMalformedInput)
	}
	if _, ok := dns.IsDomainName(domain); !ok {
		return models.DNSQuery{}, fmt.Errorf("invalid domain %q: %w", q.Domain, ErrMalformedInput)
	}

	qtype := strings.ToUpper(strings.TrimSpace(q.QueryType))
	if _, ok := dns.StringToType[qtype]; !ok {
		return models.DNSQuery{}, fmt.Errorf("unknown query type %q: %w", q.QueryType, ErrMalformedInput)
	}

	if q.Timestamp < 0 {
		return models.DNSQuery{}, fmt.Errorf("negative timestamp: %w", ErrMalformedInput)
	}

	return models.DNSQuery{
		IPAddress: addr,
		Domain:    dns.CanonicalName(domain),
		QueryType: qtype,
		Timestamp: q.Timestamp,
	}, nil
}

func normalizeAddress(ip string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return "", fmt.Errorf("invalid ip address %q: %w", ip, ErrMalformedInput)
	}
	return addr.Unmap().String(), nil
}
