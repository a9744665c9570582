package models

// Logo is an image served by the logo endpoint.
type Logo struct {
	Data        []byte
	ContentType string

	// Processed is true when Data has gone through background removal.
	// False means the original asset is served.
	Processed bool
}
