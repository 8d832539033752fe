// Package endpoint maps logical EODHD endpoint names to URL paths and query
// parameters.
//
// The mapping is a single declarative table: each Descriptor carries its path
// template, its symbol requirements and the ordered list of parameter rules
// applied after the generic parameters are inserted.
package endpoint

import (
	"errors"
	"sort"
)

var (
	// ErrInvalidInput reports a missing or malformed user input (symbol,
	// indicator function, token). No network call is made.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedEndpoint reports an endpoint name outside the table.
	ErrUnsupportedEndpoint = errors.New("unsupported endpoint")
)

// SymbolKind describes what the symbol slot of an endpoint means.
type SymbolKind int

const (
	SymbolNone SymbolKind = iota
	SymbolTicker
	SymbolExchange
	SymbolCountry
	SymbolSector
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolTicker:
		return "ticker"
	case SymbolExchange:
		return "exchange code"
	case SymbolCountry:
		return "country code"
	case SymbolSector:
		return "sector"
	default:
		return "none"
	}
}

// Group is a documentation grouping used by the CLI help text.
type Group string

const (
	GroupMarketData   Group = "Market Data"
	GroupFundamentals Group = "Fundamentals"
	GroupCorporate    Group = "Corporate"
	GroupTechnical    Group = "Technical"
	GroupMacro        Group = "Macro"
	GroupCalendar     Group = "Calendar"
	GroupExchange     Group = "Exchange"
	GroupScreening    Group = "Screening"
	GroupUSQuotes     Group = "US Quotes"
	GroupAccount      Group = "Account"
	GroupTreasury     Group = "US Treasury"
	GroupESG          Group = "ESG"
)

// Descriptor describes one endpoint.
//
// Path may contain the "{symbol}" placeholder. RequiresSymbol controls path
// resolution only; parameter rules may impose their own symbol requirement
// (us-quote-delayed).
type Descriptor struct {
	Name           string
	Path           string
	Group          Group
	Symbol         SymbolKind
	RequiresSymbol bool
	Rules          []Rule
}

const symbolPlaceholder = "{symbol}"

var table = []Descriptor{
	// Market data
	{Name: "eod", Path: "/eod/{symbol}", Group: GroupMarketData, Symbol: SymbolTicker, RequiresSymbol: true},
	{Name: "intraday", Path: "/intraday/{symbol}", Group: GroupMarketData, Symbol: SymbolTicker, RequiresSymbol: true},
	{Name: "real-time", Path: "/real-time/{symbol}", Group: GroupMarketData, Symbol: SymbolTicker, RequiresSymbol: true},
	{Name: "eod-bulk-last-day", Path: "/eod-bulk-last-day/{symbol}", Group: GroupMarketData, Symbol: SymbolExchange, RequiresSymbol: true},
	{Name: "historical-market-cap", Path: "/historical-market-cap/{symbol}", Group: GroupMarketData, Symbol: SymbolTicker, RequiresSymbol: true},

	// Fundamentals & company data
	{Name: "fundamentals", Path: "/fundamentals/{symbol}", Group: GroupFundamentals, Symbol: SymbolTicker, RequiresSymbol: true},
	{Name: "bulk-fundamentals", Path: "/bulk-fundamentals/{symbol}", Group: GroupFundamentals, Symbol: SymbolExchange, RequiresSymbol: true,
		Rules: []Rule{OptionalString(func(q Query) string { return q.Symbols }, "symbols"), OptionalString(func(q Query) string { return q.Version }, "version")}},
	{Name: "news", Path: "/news", Group: GroupFundamentals, Symbol: SymbolTicker, RequiresSymbol: true,
		Rules: []Rule{SymbolAs("s")}},
	{Name: "sentiment", Path: "/sentiments", Group: GroupFundamentals, Symbol: SymbolTicker, RequiresSymbol: true,
		Rules: []Rule{SymbolAs("s")}},
	{Name: "news-word-weights", Path: "/news-word-weights", Group: GroupFundamentals, Symbol: SymbolTicker, RequiresSymbol: true,
		Rules: []Rule{SymbolAs("s"), Rename("from", "filter[date_from]"), Rename("to", "filter[date_to]"), Rename("limit", "page[limit]")}},
	{Name: "insider-transactions", Path: "/insider-transactions", Group: GroupFundamentals, Symbol: SymbolTicker, RequiresSymbol: true,
		Rules: []Rule{SymbolAs("code")}},

	// Corporate actions
	{Name: "dividends", Path: "/div/{symbol}", Group: GroupCorporate, Symbol: SymbolTicker, RequiresSymbol: true},
	{Name: "splits", Path: "/splits/{symbol}", Group: GroupCorporate, Symbol: SymbolTicker, RequiresSymbol: true},

	// Technical analysis
	{Name: "technical", Path: "/technical/{symbol}", Group: GroupTechnical, Symbol: SymbolTicker, RequiresSymbol: true},

	// Macro & economic
	{Name: "macro-indicator", Path: "/macro-indicator/{symbol}", Group: GroupMacro, Symbol: SymbolCountry, RequiresSymbol: true},
	{Name: "economic-events", Path: "/economic-events", Group: GroupMacro},

	// Calendar events
	{Name: "calendar/earnings", Path: "/calendar/earnings", Group: GroupCalendar, Symbol: SymbolTicker,
		Rules: []Rule{SymbolReplacesRange("symbols")}},
	{Name: "calendar/trends", Path: "/calendar/trends", Group: GroupCalendar, Symbol: SymbolTicker, RequiresSymbol: true,
		Rules: []Rule{RequireSymbolAs("symbols", "--symbol is required for calendar/trends (comma-separated)")}},
	{Name: "calendar/ipos", Path: "/calendar/ipos", Group: GroupCalendar},
	{Name: "calendar/splits", Path: "/calendar/splits", Group: GroupCalendar, Symbol: SymbolTicker,
		Rules: []Rule{SymbolAs("symbols")}},
	{Name: "calendar/dividends", Path: "/calendar/dividends", Group: GroupCalendar, Symbol: SymbolTicker,
		Rules: []Rule{SymbolAs("filter[symbol]"), Rename("from", "filter[date_from]"), Rename("to", "filter[date_to]"), Rename("limit", "page[limit]"), Rename("offset", "page[offset]")}},

	// Exchange & listing
	{Name: "exchange-symbol-list", Path: "/exchange-symbol-list/{symbol}", Group: GroupExchange, Symbol: SymbolExchange, RequiresSymbol: true},
	{Name: "exchanges-list", Path: "/exchanges-list", Group: GroupExchange},
	{Name: "exchanges-details", Path: "/exchanges/{symbol}", Group: GroupExchange, Symbol: SymbolExchange, RequiresSymbol: true},
	{Name: "index-components", Path: "/fundamentals/{symbol}", Group: GroupExchange, Symbol: SymbolTicker, RequiresSymbol: true},

	// Screening
	{Name: "screener", Path: "/screener", Group: GroupScreening},

	// US extended quotes (Live v2)
	{Name: "us-quote-delayed", Path: "/us-quote-delayed", Group: GroupUSQuotes, Symbol: SymbolTicker,
		Rules: []Rule{RequireSymbolAs("s", "--symbol is required for us-quote-delayed (comma-separated for batch)"), Rename("limit", "page[limit]"), Rename("offset", "page[offset]")}},

	// Account
	{Name: "user", Path: "/user", Group: GroupAccount},

	// US Treasury rates
	{Name: "ust/bill-rates", Path: "/ust/bill-rates", Group: GroupTreasury, Rules: treasuryRules},
	{Name: "ust/long-term-rates", Path: "/ust/long-term-rates", Group: GroupTreasury, Rules: treasuryRules},
	{Name: "ust/yield-rates", Path: "/ust/yield-rates", Group: GroupTreasury, Rules: treasuryRules},
	{Name: "ust/real-yield-rates", Path: "/ust/real-yield-rates", Group: GroupTreasury, Rules: treasuryRules},

	// ESG (Investverte marketplace)
	{Name: "esg", Path: "/mp/investverte/esg/{symbol}", Group: GroupESG, Symbol: SymbolTicker, RequiresSymbol: true, Rules: esgRules},
	{Name: "esg-country", Path: "/mp/investverte/country/{symbol}", Group: GroupESG, Symbol: SymbolCountry, RequiresSymbol: true, Rules: esgRules},
	{Name: "esg-sector", Path: "/mp/investverte/sector/{symbol}", Group: GroupESG, Symbol: SymbolSector, RequiresSymbol: true},
	{Name: "esg-sectors", Path: "/mp/investverte/sectors", Group: GroupESG},
}

var treasuryRules = []Rule{
	OptionalInt(func(q Query) *int { return q.FilterYear }, "filter[year]"),
	Rename("limit", "page[limit]"),
	Rename("offset", "page[offset]"),
}

var esgRules = []Rule{
	OptionalInt(func(q Query) *int { return q.FilterYear }, "year"),
	OptionalString(func(q Query) string { return q.Frequency }, "frequency"),
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(table))
	for _, d := range table {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// Names returns every supported endpoint name in table order.
func Names() []string {
	out := make([]string, 0, len(table))
	for _, d := range table {
		out = append(out, d.Name)
	}
	return out
}

// Groups returns endpoint names bucketed by documentation group. Names inside
// a group are sorted.
func Groups() map[Group][]string {
	out := make(map[Group][]string)
	for _, d := range table {
		out[d.Group] = append(out[d.Group], d.Name)
	}
	for g := range out {
		sort.Strings(out[g])
	}
	return out
}

// GroupOrder returns the documentation groups in table order.
func GroupOrder() []Group {
	var out []Group
	seen := make(map[Group]bool)
	for _, d := range table {
		if !seen[d.Group] {
			seen[d.Group] = true
			out = append(out, d.Group)
		}
	}
	return out
}
