// Package geodesy implements great-circle math on a spherical earth:
// destination-point projection, haversine distance, bounding boxes and
// area-uniform random sampling inside a disc.
//
// All functions are pure and safe for concurrent use. Inputs are trusted:
// callers validate coordinates, distances and radii before calling in.
package geodesy
