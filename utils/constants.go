// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for wizard session cache keys.
const SessionCachePrefix = "wizard:session:"

// SessionTTL is how long an abandoned wizard session survives in Redis.
const SessionTTL = 30 * time.Minute

// OrderRecordPrefix is the prefix used for confirmed order record keys.
const OrderRecordPrefix = "order:phone:"

// OrderRecordTTL keeps a confirmed order visible to the status tracker.
const OrderRecordTTL = 24 * time.Hour
