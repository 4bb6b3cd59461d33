// Package core provides the sample container and small numeric helpers
// shared by the filter packages.
//
// A [Series] carries caller-owned samples as either float32 or int32 values
// and exposes one canonical float64 view via [Series.Float64s]. Every filter
// converts at this boundary, so downstream code only ever sees float64.
package core
