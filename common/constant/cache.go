package constant

import "time"

const (
	SessionKey       = "session:%s"
	DistrictsListKey = "location:districts:%s"
	WardsListKey     = "location:wards:%s"
)

const (
	SessionDefaultTTL  = 30 * 24 * time.Hour
	LocationDefaultTTL = 24 * time.Hour
)
