// Package famdash renders a daily family dashboard as a static 1600×1200 raster
// image for four-color e-ink panels (Spectra E6 class: white, black, red, gray).
//
// The package is split into two independently testable units connected by a single
// plain data value:
//   - Data providers: mock generators for date text, weather, the daily schedule,
//     the school lunch menu, and announcements, aggregated by Provider into a
//     DashboardData bundle for an injected date.
//   - Layout renderer: Layout partitions the fixed canvas into rectangular regions
//     (header, weather with temperature graph, lunch, announcements, schedule,
//     footer) and draws text and simple shapes using only the permitted palette,
//     then encodes the result as PNG.
//
// Rendering is a single-pass, stateless transform: the same input date produces a
// byte-identical image across runs. The weather mock is seeded from the date and
// the footer timestamp comes from the bundle, never from the wall clock.
//
// Every pixel of the finished image is snapped to the display palette. For
// photo-like content the package also implements local dithering (error diffusion
// with a choice of kernels, or ordered threshold) with black/white preservation so
// text stays crisp; see Ditherer.
//
// Features
//   - Fixed 1600×1200 canvas with non-overlapping pixel regions
//   - Four-color render palette, optional six-color Spectra E6 palette
//   - Word wrapping with whole-line clipping at region bounds
//   - Deterministic output for a given date
//   - Embedded Go fonts (no font files to manage)
//
// The providers are stand-ins for later integrations (weather API, calendar sync,
// lunch-menu feeds); swapping them for real sources requires no renderer changes.
package famdash
