package mirror

import "context"

// Slice names mirrored to durable storage.
const (
	SliceProducts = "products"
	SliceCart     = "cart"
	SliceUser     = "user"
	SlicePoints   = "userPoints"
	SliceReviews  = "reviews"
)

// Mirror synchronizes named store slices to durable per-deployment storage.
//
// Load reports whether dest was populated from storage. Absent and corrupt
// values both report false so the caller keeps its default; corruption is
// never fatal. Save failures leave the in-memory slice authoritative for the
// session, so callers are expected to log and move on.
type Mirror interface {
	Load(ctx context.Context, slice string, dest any) bool
	Save(ctx context.Context, slice string, value any) error
}
