package model

// Photo is one user-contributed image of a place.
type Photo struct {
	ID          string
	PlaceID     string
	StoragePath string
	Alt         string
	Caption     string
	Width       int // intrinsic pixel width
	Height      int // intrinsic pixel height
}
