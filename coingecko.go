package club

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultOracleURL is the CoinGecko simple price endpoint.
const DefaultOracleURL = "https://api.coingecko.com/api/v3/simple/price"

// oracleTimeout bounds a single price fetch; callers never block longer.
const oracleTimeout = 10 * time.Second

// DefaultAssetIDs maps the supported asset symbols to CoinGecko ids.
var DefaultAssetIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
}

// DefaultFallbackPrices are the static prices substituted when the oracle is
// unavailable, in the reference currency.
var DefaultFallbackPrices = map[string]float64{
	"BTC": 97500,
	"ETH": 5250,
}

// PriceOracle fetches current prices from CoinGecko. It can fail, so Fetch
// never returns an error: on failure or timeout the static fallback prices
// are substituted and the snapshot is marked stale.
type PriceOracle struct {
	URL      string
	Currency string            // reference currency, lower-cased on the wire
	IDs      map[string]string // symbol to CoinGecko id
	Fallback map[string]Money
	Client   *http.Client
}

// NewPriceOracle creates an oracle for the reference currency with the
// default endpoint, asset ids, fallback prices and timeout.
func NewPriceOracle(currency string) *PriceOracle {
	if currency == "" {
		currency = DefaultCurrency
	}
	fallback := make(map[string]Money, len(DefaultFallbackPrices))
	for symbol, price := range DefaultFallbackPrices {
		fallback[symbol] = M(price, currency)
	}
	return &PriceOracle{
		URL:      DefaultOracleURL,
		Currency: currency,
		IDs:      DefaultAssetIDs,
		Fallback: fallback,
		Client:   &http.Client{Timeout: oracleTimeout},
	}
}

// Fetch returns a usable snapshot for the requested assets, never an error.
// Assets without a CoinGecko id are left unpriced (flagged downstream by the
// valuation). When the endpoint fails, times out, or yields no price at all,
// the fallback map takes over and the snapshot is marked stale.
func (o *PriceOracle) Fetch(assets ...string) PriceSnapshot {
	var ids []string
	for _, asset := range assets {
		if id, ok := o.IDs[asset]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return o.fallback()
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", strings.ToLower(o.Currency))
	addr := o.URL + "?" + q.Encode()

	var jobj any
	if err := jwget(o.Client, addr, &jobj); err != nil {
		log.Printf("price oracle unavailable, using fallback prices: %v", err)
		return o.fallback()
	}

	prices := make(map[string]Money)
	for _, asset := range assets {
		id, ok := o.IDs[asset]
		if !ok {
			continue
		}
		path := "$." + id + "." + strings.ToLower(o.Currency)
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			log.Printf("no %s price in oracle response: %v", asset, err)
			continue
		}
		// jsonpath may wrap a single answer in a list
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		val, ok := jval.(float64)
		if !ok || val <= 0 {
			log.Printf("unusable %s price in oracle response: %v", asset, jval)
			continue
		}
		prices[asset] = M(val, o.Currency)
	}
	if len(prices) == 0 {
		log.Printf("price oracle returned no usable price, using fallback prices")
		return o.fallback()
	}
	return NewPriceSnapshot(prices, false)
}

func (o *PriceOracle) fallback() PriceSnapshot {
	return NewPriceSnapshot(o.Fallback, true)
}
