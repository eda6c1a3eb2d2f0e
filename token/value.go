package token

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
)

// DecodeValue reads the payload shaped by typ and returns its textual
// form. It is shared by attribute decoding and by skip paths; the
// reader must be positioned immediately after the token byte.
//
// Hex integers render in two's-complement form without padding or
// prefix, matching the reference converter. Floats use the shortest
// round-trip decimal form, which is implementation-defined in the
// format; compare decoded floats numerically, not textually.
func DecodeValue(r *Reader, in *Interns, typ Type) (string, error) {
	switch typ {
	case TypeNull:
		return "null", nil
	case TypeBooleanTrue:
		return "true", nil
	case TypeBooleanFalse:
		return "false", nil
	case TypeInt:
		v, err := r.ReadInt32()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case TypeIntHex:
		v, err := r.ReadInt32()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(uint32(v)), 16), nil
	case TypeLong:
		v, err := r.ReadInt64()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case TypeLongHex:
		v, err := r.ReadInt64()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(v), 16), nil
	case TypeFloat:
		v, err := r.ReadFloat32()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case TypeDouble:
		v, err := r.ReadFloat64()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case TypeString:
		return r.ReadString()
	case TypeStringInterned:
		return r.ReadInterned(in)
	case TypeBytesHex:
		d, err := r.ReadBytes()
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(d), nil
	case TypeBytesBase64:
		d, err := r.ReadBytes()
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(d), nil
	default:
		return "", fmt.Errorf("%w: %s at offset %d", ErrValueType, typ, r.Offset())
	}
}
