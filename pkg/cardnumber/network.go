package cardnumber

import (
	"fmt"
	"strings"
)

// Network identifies the issuing card network of a number.
//
// The zero value NetworkUnknown means no prefix matched. Text encoding uses
// the lowercase names returned by String.
type Network uint8

const (
	// NetworkUnknown is reported when no prefix matches (or there are no digits)
	NetworkUnknown Network = iota
	NetworkVisa
	NetworkMasterCard
	NetworkAmericanExpress
	NetworkDinersClub
	NetworkDiscover
	NetworkMaestro
)

type networkInfo struct {
	name     string
	title    string
	prefixes []string
}

var networkTable = map[Network]networkInfo{
	NetworkUnknown: {name: "unknown"},
	NetworkVisa: {
		name:     "visa",
		title:    "Visa",
		prefixes: []string{"4"},
	},
	NetworkMasterCard: {
		name:     "mastercard",
		title:    "Master Card",
		prefixes: []string{"51", "52", "53", "54", "55"},
	},
	NetworkAmericanExpress: {
		name:     "amex",
		title:    "American Express",
		prefixes: []string{"34", "37"},
	},
	NetworkDinersClub: {
		name:     "diners",
		title:    "Diners Club",
		prefixes: []string{"300", "301", "302", "303", "304", "305", "36", "54"},
	},
	NetworkDiscover: {
		name:     "discover",
		title:    "Discover",
		prefixes: []string{"6011", "644", "645", "646", "647", "648", "649", "65"},
	},
	NetworkMaestro: {
		name:     "maestro",
		title:    "Maestro",
		prefixes: []string{"5018", "5020", "5038", "5893", "6304", "6759", "6761", "6762", "6763"},
	},
}

// classificationOrder is the order networks are tried in. Prefixes overlap
// ("54" is both MasterCard and Diners Club); the earlier network wins.
var classificationOrder = []Network{
	NetworkVisa,
	NetworkMasterCard,
	NetworkAmericanExpress,
	NetworkDinersClub,
	NetworkDiscover,
	NetworkMaestro,
}

// Networks returns the known networks in classification order.
func Networks() []Network {
	out := make([]Network, len(classificationOrder))
	copy(out, classificationOrder)
	return out
}

// Classify returns the first network in classification order that has a
// prefix digits starts with.
func Classify(digits string) Network {
	if digits == "" {
		return NetworkUnknown
	}
	for _, n := range classificationOrder {
		for _, prefix := range networkTable[n].prefixes {
			if strings.HasPrefix(digits, prefix) {
				return n
			}
		}
	}
	return NetworkUnknown
}

// String returns the lowercase name of the network, e.g. "visa".
func (n Network) String() string {
	info, ok := networkTable[n]
	if !ok {
		return fmt.Sprintf("Network(%d)", uint8(n))
	}
	return info.name
}

// Title returns the human-readable network name, empty for NetworkUnknown.
func (n Network) Title() string {
	return networkTable[n].title
}

// Prefixes returns the number prefixes of the network in declared order.
func (n Network) Prefixes() []string {
	prefixes := networkTable[n].prefixes
	out := make([]string, len(prefixes))
	copy(out, prefixes)
	return out
}

// IsKnown reports whether n is a recognized network other than NetworkUnknown.
func (n Network) IsKnown() bool {
	_, ok := networkTable[n]
	return ok && n != NetworkUnknown
}

// ParseNetwork parses a network name as returned by String.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseNetwork(s string) (Network, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for n, info := range networkTable {
		if info.name == normalized {
			return n, nil
		}
	}
	return NetworkUnknown, fmt.Errorf("unknown network name %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	if _, ok := networkTable[n]; !ok {
		return nil, fmt.Errorf("cannot marshal invalid network %d", uint8(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
