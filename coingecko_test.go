package club

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestOracle points a default oracle at a test server with a short
// timeout so the timeout paths stay fast.
func newTestOracle(srv *httptest.Server) *PriceOracle {
	o := NewPriceOracle("AUD")
	o.URL = srv.URL
	o.Client = &http.Client{Timeout: 200 * time.Millisecond}
	return o
}

func TestPriceOracle_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "aud", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin":{"aud":101234.5},"ethereum":{"aud":5432.1}}`))
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("BTC", "ETH")

	assert.False(t, snapshot.Stale)
	btc, ok := snapshot.Price("BTC")
	require.True(t, ok)
	assert.True(t, btc.Equal(AUD(101234.5)), "BTC = %s", btc)
	eth, ok := snapshot.Price("ETH")
	require.True(t, ok)
	assert.True(t, eth.Equal(AUD(5432.1)), "ETH = %s", eth)
}

func TestPriceOracle_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("BTC", "ETH")

	assert.True(t, snapshot.Stale)
	btc, ok := snapshot.Price("BTC")
	require.True(t, ok)
	assert.True(t, btc.Equal(AUD(97500)), "fallback BTC = %s", btc)
	eth, ok := snapshot.Price("ETH")
	require.True(t, ok)
	assert.True(t, eth.Equal(AUD(5250)), "fallback ETH = %s", eth)
}

func TestPriceOracle_TimeoutFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("BTC")

	assert.True(t, snapshot.Stale)
	btc, ok := snapshot.Price("BTC")
	require.True(t, ok)
	assert.True(t, btc.Equal(AUD(97500)))
}

func TestPriceOracle_UnknownAssetLeftUnpriced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"aud":100000}}`))
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("BTC", "DOGE")

	assert.False(t, snapshot.Stale)
	_, ok := snapshot.Price("DOGE")
	assert.False(t, ok, "DOGE has no CoinGecko id, it must stay unpriced")
	_, ok = snapshot.Price("BTC")
	assert.True(t, ok)
}

func TestPriceOracle_NoKnownAssetsFallsBack(t *testing.T) {
	// no request must ever hit the server
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("oracle queried for assets without ids")
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("DOGE")

	assert.True(t, snapshot.Stale)
	assert.Equal(t, 2, snapshot.Len(), "fallback carries the default prices")
}

func TestPriceOracle_PartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"aud":100000}}`))
	}))
	defer srv.Close()

	snapshot := newTestOracle(srv).Fetch("BTC", "ETH")

	// one good price is enough to avoid the fallback
	assert.False(t, snapshot.Stale)
	_, ok := snapshot.Price("ETH")
	assert.False(t, ok)
}
