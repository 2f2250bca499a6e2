package utils

import "time"

// QuoteCachePrefix is the prefix for cached availability quote keys.
const QuoteCachePrefix = "quote:"

// QuoteCacheTTL is the time-to-live for cached availability quotes.
const QuoteCacheTTL = 5 * time.Minute
