package config

import (
	"time"
)

// Stripe holds payment-processor credentials. The API key has no default:
// a missing key is a fatal startup error.
type Stripe struct {
	ApiKey string `envconfig:"API_KEY" required:"true"`
}

type PaymentProviders struct {
	Stripe *Stripe `envconfig:"STRIPE"`
}

// Content configures the content-store client and its optional product
// cache. A CacheTTL of zero disables caching, so every checkout fetches
// the product fresh.
type Content struct {
	ApiUrl            string        `envconfig:"API_URL" default:"https://vapor75.cdn.prismic.io/api/v2"`
	AccessToken       string        `envconfig:"ACCESS_TOKEN"`
	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	DefaultProductUID string        `envconfig:"DEFAULT_PRODUCT_UID" default:"vapor75"`
	CacheTTL          time.Duration `envconfig:"CACHE_TTL" default:"0"`
	CacheUrl          string        `envconfig:"CACHE_URL"`
	CachePrefix       string        `envconfig:"CACHE_PREFIX" default:"content:product:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[storefront]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env              string            `envconfig:"APP_ENV" default:"development"`
	Server           *Server           `envconfig:"SERVER"`
	Log              *Log              `envconfig:"LOG"`
	Content          *Content          `envconfig:"CONTENT"`
	RateLimit        *RateLimit        `envconfig:"RATE_LIMIT"`
	PaymentProviders *PaymentProviders `envconfig:"PAYMENT_PROVIDER"`
}
