package handler

import "time"

// TimeFormat renders every timestamp in API responses, including the
// nullable published_at field.
const TimeFormat = time.RFC3339
