package constants

import (
	"time"
)

// Redis key and TTL catalog.
// Pattern: voyago:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG   = 24 * time.Hour // very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // layouts, seat map shells
	TTL_STATIC_SHORT  = 6 * time.Hour  // user profiles
)

const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // price history
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // review listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // pricing insights
)

const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // room availability
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // seat maps with availability
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // flight status
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "voyago"
)

// ================== SEAT SELECTION MODULE ==================

const (
	CACHE_KEY_SEAT_MAP = CACHE_PREFIX + ":seats:map:flight:" // + flight-id
)

const (
	TTL_SEAT_MAP = TTL_DYNAMIC_SHORT
)

// Booking commit locks (not cache entries, but the keyspace lives here)
const (
	LOCK_KEY_SEAT_BOOKING = CACHE_PREFIX + ":seats:booking_lock:flight:" // + flight-id
	LOCK_KEY_ROOM_BOOKING = CACHE_PREFIX + ":rooms:booking_lock:hotel:"  // + hotel-id
)

// ================== ROOM SELECTION MODULE ==================

const (
	CACHE_KEY_ROOM_LAYOUT = CACHE_PREFIX + ":rooms:layout:hotel:" // + hotel-id
)

const (
	TTL_ROOM_LAYOUT = TTL_DYNAMIC_MEDIUM
)

// ================== PRICING MODULE ==================

const (
	// Active price freezes keyed by item and user; TTL carries the freeze window
	KEY_PRICE_FREEZE = CACHE_PREFIX + ":pricing:freeze:" // + item-type:item-id:user-id

	CACHE_KEY_PRICE_HISTORY  = CACHE_PREFIX + ":pricing:history:"  // + item-id:item-type
	CACHE_KEY_PRICE_INSIGHTS = CACHE_PREFIX + ":pricing:insights:" // + item-id:item-type
)

const (
	TTL_PRICE_HISTORY  = TTL_SEMI_STATIC_MEDIUM
	TTL_PRICE_INSIGHTS = TTL_SEMI_STATIC_QUICK
)

// ================== REVIEWS MODULE ==================

const (
	CACHE_KEY_REVIEWS_BY_ITEM = CACHE_PREFIX + ":reviews:item:"   // + item-id:item-type:sort
	CACHE_KEY_REVIEW_RATING   = CACHE_PREFIX + ":reviews:rating:" // + item-id:item-type
)

const (
	TTL_REVIEWS_LIST  = TTL_SEMI_STATIC_SHORT
	TTL_REVIEW_RATING = TTL_SEMI_STATIC_SHORT
)

// ================== FLIGHT STATUS MODULE ==================

const (
	CACHE_KEY_FLIGHT_STATUS = CACHE_PREFIX + ":flightstatus:flight:" // + flight-id
)

const (
	TTL_FLIGHT_STATUS = TTL_DYNAMIC_QUICK
)

// ================== USERS MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":users:profile:uuid:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_SEATS   = CACHE_PREFIX + ":seats:*"
	PATTERN_INVALIDATE_ROOMS   = CACHE_PREFIX + ":rooms:layout:*"
	PATTERN_INVALIDATE_PRICING = CACHE_PREFIX + ":pricing:history:*"
	PATTERN_INVALIDATE_REVIEWS = CACHE_PREFIX + ":reviews:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildSeatMapKey(flightID string) string {
	return CACHE_KEY_SEAT_MAP + flightID
}

func BuildRoomLayoutKey(hotelID string) string {
	return CACHE_KEY_ROOM_LAYOUT + hotelID
}

func BuildPriceFreezeKey(itemType, itemID, userID string) string {
	return KEY_PRICE_FREEZE + itemType + ":" + itemID + ":" + userID
}

func BuildPriceHistoryKey(itemID, itemType string) string {
	return CACHE_KEY_PRICE_HISTORY + itemID + ":" + itemType
}

func BuildPriceInsightsKey(itemID, itemType string) string {
	return CACHE_KEY_PRICE_INSIGHTS + itemID + ":" + itemType
}

func BuildReviewsByItemKey(itemID, itemType, sort string) string {
	return CACHE_KEY_REVIEWS_BY_ITEM + itemID + ":" + itemType + ":" + sort
}

func BuildReviewRatingKey(itemID, itemType string) string {
	return CACHE_KEY_REVIEW_RATING + itemID + ":" + itemType
}

func BuildFlightStatusKey(flightID string) string {
	return CACHE_KEY_FLIGHT_STATUS + flightID
}

func BuildUserProfileKey(userID string) string {
	return CACHE_KEY_USER_PROFILE + userID
}

func BuildSeatBookingLockKey(flightID string) string {
	return LOCK_KEY_SEAT_BOOKING + flightID
}

func BuildRoomBookingLockKey(hotelID string) string {
	return LOCK_KEY_ROOM_BOOKING + hotelID
}
