package model

//go:generate go run github.com/dmarkham/enumer -type KeyClass -trimprefix KeyClass -transform snake -yaml -output key_class.gen.go

// KeyClass categorizes an app key. The class drives default behavior when a
// key is issued: keys minted for a user carry the user class, machine keys
// the service classes, and everything else falls back to KeyClassOther.
//
// The zero value is deliberately unused so an unspecified class can be
// recognized and defaulted to KeyClassOther at creation time.
type KeyClass int

const (
	KeyClassUser        KeyClass = 1
	KeyClassApplication KeyClass = 2
	KeyClassService     KeyClass = 3
	KeyClassServiceUser KeyClass = 6
	KeyClassOther       KeyClass = 1000
)
