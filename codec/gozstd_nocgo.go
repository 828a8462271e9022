//go:build !cgo

package codec

func cgoCodecs() []Codec {
	return nil
}
